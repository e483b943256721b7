package catalog

import (
	"fmt"

	"github.com/d5/tengo/v2"
)

const readyVar = "__ready"

// ReadyContext is the snapshot a readiness predicate is evaluated against.
type ReadyContext struct {
	Progress float64
	Grounded bool
	Elapsed  float64
	InState  func(name string) bool
}

// Predicate is a compiled tengo boolean expression. Scripts see the
// variables progress, grounded and elapsed and the function in_state(name).
type Predicate struct {
	src      string
	compiled *tengo.Compiled
}

// CompilePredicate compiles a readiness expression such as
// `in_state("Punch") && progress >= 0.5`.
func CompilePredicate(src string) (*Predicate, error) {
	script := tengo.NewScript([]byte(fmt.Sprintf("%s := (%s)", readyVar, src)))
	for name, v := range map[string]interface{}{
		"progress": 0.0,
		"grounded": false,
		"elapsed":  0.0,
	} {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("predicate %q: %w", src, err)
		}
	}
	if err := script.Add("in_state", inStateFunc(nil)); err != nil {
		return nil, fmt.Errorf("predicate %q: %w", src, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("predicate %q: %w", src, err)
	}
	return &Predicate{src: src, compiled: compiled}, nil
}

func (p *Predicate) String() string { return p.src }

// Eval runs the predicate. A nil predicate is never ready.
func (p *Predicate) Eval(ctx ReadyContext) (bool, error) {
	if p == nil {
		return false, nil
	}
	if err := p.compiled.Set("progress", ctx.Progress); err != nil {
		return false, err
	}
	if err := p.compiled.Set("grounded", ctx.Grounded); err != nil {
		return false, err
	}
	if err := p.compiled.Set("elapsed", ctx.Elapsed); err != nil {
		return false, err
	}
	if err := p.compiled.Set("in_state", inStateFunc(ctx.InState)); err != nil {
		return false, err
	}
	if err := p.compiled.Run(); err != nil {
		return false, fmt.Errorf("predicate %q: %w", p.src, err)
	}
	return p.compiled.Get(readyVar).Bool(), nil
}

func inStateFunc(fn func(string) bool) *tengo.UserFunction {
	return &tengo.UserFunction{
		Name: "in_state",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			name, ok := tengo.ToString(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{
					Name:     "name",
					Expected: "string",
					Found:    args[0].TypeName(),
				}
			}
			if fn != nil && fn(name) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		},
	}
}
