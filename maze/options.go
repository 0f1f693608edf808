package maze

import (
	"fmt"
	"math"

	"github.com/katalvlaran/imggen/rng"
)

// Defaults shared by every maze variant.
const (
	DefaultWidth   = 0.2
	DefaultMin     = 0x00
	DefaultMax     = 0xff
	DefaultRepeats = 1
)

// DefaultInset keeps the path one unit away from the row and col edges.
var DefaultInset = Spacing{0, 1, 1}

// Option customizes New, NewAnimated and NewSolved. Options a variant has
// no parameter for are ignored.
type Option func(*config)

type config struct {
	seed              rng.Seed
	min, max, repeats int

	width  float64
	inset  Spacing
	origin Origin

	delay, linger int
	trace         bool

	start, end Origin
	solver     Solver
}

func defaultConfig() config {
	return config{
		seed:    rng.NoSeed(),
		min:     DefaultMin,
		max:     DefaultMax,
		repeats: DefaultRepeats,
		width:   DefaultWidth,
		inset:   DefaultInset,
		origin:  TopLeft,
		trace:   true,
		start:   TopLeft,
		end:     BottomRight,
		solver:  Branches,
	}
}

// WithSeed fixes the seed of the value table shuffle.
func WithSeed(s rng.Seed) Option {
	return func(c *config) { c.seed = s }
}

// WithRange sets the value-table range [min, max). Panics if max <= min.
func WithRange(min, max int) Option {
	if max <= min {
		panic(fmt.Sprintf("maze: WithRange(%d, %d): max must exceed min", min, max))
	}
	return func(c *config) { c.min, c.max = min, max }
}

// WithRepeats sets how many extra copies of the range the table holds.
func WithRepeats(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("maze: WithRepeats(%d): must be non-negative", n))
	}
	return func(c *config) { c.repeats = n }
}

// WithWidth sets the path half-thickness as a fraction of the col unit.
// Panics on negative or NaN widths.
func WithWidth(w float64) Option {
	if math.IsNaN(w) || w < 0 {
		panic(fmt.Sprintf("maze: WithWidth(%v): must be non-negative", w))
	}
	return func(c *config) { c.width = w }
}

// WithInset sets how many units the lattice stays away from each edge.
func WithInset(inset Spacing) Option {
	for _, v := range inset {
		if v < 0 {
			panic(fmt.Sprintf("maze: WithInset(%s): must be non-negative", inset))
		}
	}
	return func(c *config) { c.inset = inset }
}

// WithOrigin sets where the carve starts.
func WithOrigin(o Origin) Option {
	return func(c *config) { c.origin = o }
}

// WithDelay prepends n blank frames to an animation.
func WithDelay(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("maze: WithDelay(%d): must be non-negative", n))
	}
	return func(c *config) { c.delay = n }
}

// WithLinger appends n copies of the last animation frame.
func WithLinger(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("maze: WithLinger(%d): must be non-negative", n))
	}
	return func(c *config) { c.linger = n }
}

// WithTrace keeps earlier steps on later frames (true, the default) or
// shows only each frame's own steps.
func WithTrace(on bool) Option {
	return func(c *config) { c.trace = on }
}

// WithStart sets the first vertex of a solved route.
func WithStart(o Origin) Option {
	return func(c *config) { c.start = o }
}

// WithEnd sets the last vertex of a solved route.
func WithEnd(o Origin) Option {
	return func(c *config) { c.end = o }
}

// WithSolver picks the route search of a solved maze.
func WithSolver(s Solver) Option {
	if s != Branches && s != Breadcrumbs {
		panic(fmt.Sprintf("maze: WithSolver(%d): unknown solver", int(s)))
	}
	return func(c *config) { c.solver = s }
}
