package noise

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/imggen/rng"
	"github.com/katalvlaran/imggen/volume"
)

// Source is anything that fills a volume with image data.
//
// Fill is not safe for concurrent use on one instance: stochastic sources
// advance their generator on every call.
type Source interface {
	Fill(size volume.Shape, loc volume.Loc) (*volume.Volume, error)

	// Name is the type name used in the debug representation.
	Name() string

	// Params lists the constructor parameters in declaration order.
	Params() []Param

	fmt.Stringer
}

// Param is one named constructor parameter.
type Param struct {
	Name  string
	Value any
}

// maxArgs is the longest argument list Describe prints unabridged.
const maxArgs = 30

// Describe renders name(k=v, ...). String values are single-quoted; an
// argument list longer than 30 characters keeps its first and last ten
// characters around an ellipsis.
func Describe(name string, params []Param) string {
	args := make([]string, len(params))
	for i, p := range params {
		args[i] = p.Name + "=" + formatValue(p.Value)
	}
	s := strings.Join(args, ", ")
	if len(s) > maxArgs {
		s = s[:10] + "..." + s[len(s)-10:]
	}
	return name + "(" + s + ")"
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return "'" + x + "'"
	case rng.Seed:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case [3]float64:
		return "(" + formatFloat(x[0]) + ", " + formatFloat(x[1]) + ", " + formatFloat(x[2]) + ")"
	case *volume.Shape:
		if x == nil {
			return "None"
		}
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Equal reports whether a and b are the same kind of source built with
// equal parameters.
func Equal(a, b Source) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name() != b.Name() {
		return false
	}
	pa, pb := a.Params(), b.Params()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if pa[i].Name != pb[i].Name || !equalValue(pa[i].Value, pb[i].Value) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if sa, ok := a.(rng.Seed); ok {
		sb, ok := b.(rng.Seed)
		return ok && sa.Equal(sb)
	}
	return reflect.DeepEqual(a, b)
}
