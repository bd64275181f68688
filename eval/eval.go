package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/quillml/go-quillml/debug"
	"github.com/quillml/go-quillml/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// Eval compiles code and runs it against the entries of root and extra.
func Eval(code string, root *ir.Node, extra Env) (any, error) {
	env := NewEnv(root, extra)
	if debug.Eval() {
		debug.Logf("eval %q with %d variables\n", code, len(env))
	}
	program, err := expr.Compile(code, exprOpts(root)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return res, nil
}

// EvalNode is Eval with the result converted by FromAny.
func EvalNode(code string, root *ir.Node, extra Env) (*ir.Node, error) {
	res, err := Eval(code, root, extra)
	if err != nil {
		return nil, err
	}
	return FromAny(res)
}

func exprOpts(doc *ir.Node) []expr.Option {
	if doc == nil {
		doc = ir.NewGroup()
	}
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := doc.GetPath(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("dim", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return res.Dim(), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
