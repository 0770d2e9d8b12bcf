// Package formula compiles text formulas of one variable x into plottable functions
package formula

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrNotNumeric is returned when a formula does not produce a number
var ErrNotNumeric = errors.New("formula result is not numeric")

// Variable is the name bound to the sampled x value
const Variable = "x"

// Expression is a compiled formula
// Not safe for concurrent use: evaluation reuses one environment
type Expression struct {
	source  string
	program *vm.Program
	env     map[string]any
}

// Compile parses and type-checks a formula such as "sin(x/10)*15"
func Compile(source string, opts ...Option) (*Expression, error) {
	cfg := defaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	src := strings.TrimSpace(source)
	if src == "" {
		return nil, fmt.Errorf("formula: empty expression")
	}

	env := newEnv(cfg)
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("formula %q: %w", src, err)
	}

	e := &Expression{source: src, program: program, env: env}

	// Result type is only known after a run; probe once at the origin
	if _, err := e.eval(0); errors.Is(err, ErrNotNumeric) {
		return nil, fmt.Errorf("formula %q: %w", src, err)
	}
	return e, nil
}

// MustCompile is Compile that panics on error, for fixed built-in formulas
func MustCompile(source string, opts ...Option) *Expression {
	e, err := Compile(source, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the trimmed source text
func (e *Expression) String() string {
	return e.source
}

// Eval evaluates the formula at x
// Runtime failures yield NaN, which plots as an empty column
func (e *Expression) Eval(x float64) float64 {
	v, err := e.eval(x)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Func returns Eval as a plain function value
func (e *Expression) Func() func(float64) float64 {
	return e.Eval
}

func (e *Expression) eval(x float64) (float64, error) {
	e.env[Variable] = x
	out, err := expr.Run(e.program, e.env)
	if err != nil {
		return 0, err
	}
	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: got %T", ErrNotNumeric, out)
}
