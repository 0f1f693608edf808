package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Origin is where a path (or a solve) starts or ends: an explicit vertex or
// a description resolved against each lattice.
type Origin struct {
	text     string
	vertex   Vertex
	explicit bool
}

// OriginAt is the explicit vertex v.
func OriginAt(v Vertex) Origin { return Origin{vertex: v, explicit: true} }

// Named origins used as defaults.
var (
	TopLeft     = mustParse("tl")
	BottomRight = mustParse("br")
)

func mustParse(s string) Origin {
	o, err := ParseOrigin(s)
	if err != nil {
		panic(err)
	}
	return o
}

// ParseOrigin reads "z,y,x", a hyphenated word pair ("top-left"), two
// letters ("tl") or "middle"/"m". The first position picks the row
// (top, middle, bottom), the second the column (left, middle, right).
func ParseOrigin(s string) (Origin, error) {
	if strings.Contains(s, ",") {
		return parseCoords(s)
	}
	if _, _, err := splitWords(s); err != nil {
		return Origin{}, err
	}
	return Origin{text: s}, nil
}

func parseCoords(s string) (Origin, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Origin{}, fmt.Errorf("%w: %q needs three coordinates", ErrInvalidOrigin, s)
	}
	var c [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Origin{}, fmt.Errorf("%w: %q: %v", ErrInvalidOrigin, s, err)
		}
		c[i] = n
	}
	return OriginAt(Vertex{c[0], c[1], c[2]}), nil
}

// splitWords normalizes a descriptive origin to its row and column words.
func splitWords(s string) (row, col string, err error) {
	switch {
	case s == "middle" || s == "m":
		return "m", "m", nil
	case strings.Contains(s, "-"):
		w := strings.Split(s, "-")
		if len(w) != 2 {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidOrigin, s)
		}
		row, col = w[0], w[1]
	case len(s) == 2:
		row, col = s[:1], s[1:]
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidOrigin, s)
	}
	if _, ok := rowWords[row]; !ok {
		return "", "", fmt.Errorf("%w: %q: unknown row %q", ErrInvalidOrigin, s, row)
	}
	if _, ok := colWords[col]; !ok {
		return "", "", fmt.Errorf("%w: %q: unknown column %q", ErrInvalidOrigin, s, col)
	}
	return row, col, nil
}

type place int

const (
	first place = iota
	centre
	last
)

var rowWords = map[string]place{
	"top": first, "t": first,
	"middle": centre, "m": centre,
	"bottom": last, "b": last,
}

var colWords = map[string]place{
	"left": first, "l": first,
	"middle": centre, "m": centre,
	"right": last, "r": last,
}

func (p place) on(n int) int {
	switch p {
	case centre:
		return n / 2
	case last:
		return n - 1
	}
	return 0
}

// Resolve returns the vertex the origin names on l. Depth is always 0 for
// descriptive origins. Returns ErrInvalidOrigin when the vertex is outside l.
func (o Origin) Resolve(l *Lattice) (Vertex, error) {
	v := o.vertex
	if !o.explicit {
		row, col, err := splitWords(o.text)
		if err != nil {
			return Vertex{}, err
		}
		v = Vertex{0, rowWords[row].on(l.Dims[1]), colWords[col].on(l.Dims[2])}
	}
	if !l.InBounds(v) {
		return Vertex{}, fmt.Errorf("%w: %s outside lattice %v", ErrInvalidOrigin, v, l.Dims)
	}
	return v, nil
}

// Value is the parameter form: the description text, or the vertex.
func (o Origin) Value() any {
	if o.explicit {
		return o.vertex
	}
	return o.text
}

func (o Origin) String() string {
	if o.explicit {
		return o.vertex.String()
	}
	return o.text
}
