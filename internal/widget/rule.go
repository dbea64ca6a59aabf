package widget

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
)

// Rule is an expression deciding whether a widget is displayed
// for a given request, i.e. `path != "/debug"`.
type Rule struct {
	script  string
	program *vm.Program

	compileOnce sync.Once
	compileErr  error
}

func (r *Rule) Exec(req *http.Request) (bool, error) {
	program, err := r.getProgram()
	if err != nil {
		return false, errors.WithStack(err)
	}

	env := map[string]any{
		"path":   req.URL.Path,
		"method": req.Method,
		"host":   req.Host,
		"query":  map[string][]string(req.URL.Query()),
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return false, errors.WithStack(err)
	}

	visible, ok := result.(bool)
	if !ok {
		return false, errors.Errorf("unexpected rule '%s' result type '%T', expected boolean", r.script, result)
	}

	return visible, nil
}

func (r *Rule) Compile() error {
	_, err := r.getProgram()
	return errors.WithStack(err)
}

func (r *Rule) getProgram() (*vm.Program, error) {
	r.compileOnce.Do(func() {
		program, err := expr.Compile(r.script, expr.AsBool(), withRuleAPI())
		if err != nil {
			r.compileErr = errors.WithStack(err)
			return
		}

		r.program = program
	})
	if r.compileErr != nil {
		return nil, errors.WithStack(r.compileErr)
	}

	return r.program, nil
}

func (r *Rule) String() string {
	return r.script
}

func NewRule(script string) *Rule {
	return &Rule{script: script}
}

func withRuleAPI() expr.Option {
	return expr.Function(
		"under",
		func(params ...any) (any, error) {
			path, ok := params[0].(string)
			if !ok {
				return nil, errors.Errorf("unexpected path type '%T'", params[0])
			}

			prefix, ok := params[1].(string)
			if !ok {
				return nil, errors.Errorf("unexpected prefix type '%T'", params[1])
			}

			return path == prefix || strings.HasPrefix(path, strings.TrimSuffix(prefix, "/")+"/"), nil
		},
		new(func(string, string) bool),
	)
}

// Conditional is a widget only displayed when its rule matches the request.
type Conditional struct {
	Widget
	rule *Rule
}

func (c *Conditional) Visible(r *http.Request) (bool, error) {
	visible, err := c.rule.Exec(r)
	if err != nil {
		return false, errors.Wrapf(err, "could not evaluate rule of widget '%s'", c.Type())
	}

	return visible, nil
}

// Close closes the wrapped widget if it holds resources.
func (c *Conditional) Close() error {
	closer, ok := c.Widget.(io.Closer)
	if !ok {
		return nil
	}

	return errors.WithStack(closer.Close())
}

// When wraps the given widget so it is only displayed for requests
// matching the given rule.
func When(w Widget, rule *Rule) *Conditional {
	return &Conditional{
		Widget: w,
		rule:   rule,
	}
}

// Visible reports whether the given widget should be rendered
// for the request.
func Visible(w Widget, r *http.Request) (bool, error) {
	conditional, ok := w.(interface {
		Visible(r *http.Request) (bool, error)
	})
	if !ok {
		return true, nil
	}

	visible, err := conditional.Visible(r)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return visible, nil
}
