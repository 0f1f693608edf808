package maze

import "github.com/katalvlaran/imggen/volume"

// pen converts lattice edges to pixel rectangles.
type pen struct {
	unit, inset Spacing
	width       int // half-thickness in pixels
}

func newPen(unit, inset Spacing, width float64) pen {
	return pen{unit: unit, inset: inset, width: int(float64(unit[2]) * width)}
}

// pixel maps a lattice vertex to its pixel coordinate: v*unit + inset*unit.
func (p pen) pixel(v Vertex) [3]int {
	return [3]int{
		v.Z*p.unit[0] + p.inset[0]*p.unit[0],
		v.Y*p.unit[1] + p.inset[1]*p.unit[1],
		v.X*p.unit[2] + p.inset[2]*p.unit[2],
	}
}

// span returns [min(a,b)-w, max(a,b)+w) clipped to [0,n).
func (p pen) span(a, b, n int) (lo, hi int) {
	if a > b {
		a, b = b, a
	}
	lo, hi = a-p.width, b+p.width
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

// stroke paints e at full intensity onto one rows×cols frame.
func (p pen) stroke(frame []float64, rows, cols int, e Edge) {
	from, to := p.pixel(e.From), p.pixel(e.To)
	y0, y1 := p.span(from[1], to[1], rows)
	x0, x1 := p.span(from[2], to[2], cols)
	for y := y0; y < y1; y++ {
		row := frame[y*cols : (y+1)*cols]
		for x := x0; x < x1; x++ {
			row[x] = 1
		}
	}
}

// draw paints every edge of path onto every depth slice of out.
func (p pen) draw(out *volume.Volume, path Path) {
	s := out.Shape()
	for z := 0; z < s.Depth; z++ {
		frame := out.Frame(z)
		for _, e := range path {
			p.stroke(frame, s.Rows, s.Cols, e)
		}
	}
}
