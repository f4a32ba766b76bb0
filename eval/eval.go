// Package eval runs filter expressions against parsed documents.
package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/jute-format/go-jute/debug"
	"github.com/jute-format/go-jute/ir"
)

var ErrEval = errors.New("eval error")

// Filter compiles src as an expression and runs it with the document bound
// to the variable "doc", returning the result as a node.  Numbers surface
// to the expression as float64, objects as map[string]any, arrays as
// []any.
func Filter(doc *ir.Node, src string) (*ir.Node, error) {
	env := map[string]any{
		"doc": doc.Any(),
	}
	if debug.Eval() {
		debug.Logf("filter %q\n", src)
	}
	prg, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return node, nil
}
