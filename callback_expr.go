package godash

import (
	"github.com/expr-lang/expr"
)

// ExprCallback compiles an expr-lang expression into a Callback. The
// expression sees the current element as value, key and obj, e.g.
// ExprCallback("value > 2 && key != 0"). A runtime evaluation error yields
// nil for that element.
func ExprCallback(src string) (Callback, error) {
	program, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	return func(value, key, obj any) any {
		out, err := expr.Run(program, map[string]any{
			"value": value,
			"key":   key,
			"obj":   obj,
		})
		if err != nil {
			return nil
		}
		return out
	}, nil
}
