package formula

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Option configures compilation
type Option func(*options)

type options struct {
	noiseSeed int64
}

func defaultOptions() options {
	return options{noiseSeed: 0}
}

// WithNoiseSeed seeds the noise(x) builtin
func WithNoiseSeed(seed int64) Option {
	return func(o *options) {
		o.noiseSeed = seed
	}
}

// unary math builtins; names avoid expr's own abs/floor/ceil/round/min/max
var unary = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
}

// Builtins lists the function names available to formulas besides expr's own
func Builtins() []string {
	names := make([]string, 0, len(unary)+2)
	for name := range unary {
		names = append(names, name)
	}
	return append(names, "pow", "noise")
}

func newEnv(o options) map[string]any {
	env := make(map[string]any, len(unary)+6)
	for name, fn := range unary {
		env[name] = fn
	}
	env["pow"] = math.Pow

	noise := opensimplex.New(o.noiseSeed)
	env["noise"] = func(x float64) float64 {
		return noise.Eval2(x, 0)
	}

	env["pi"] = math.Pi
	env["e"] = math.E
	env[Variable] = 0.0
	return env
}
