/*
File    : monkey-lang/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/objects"
)

func (e *Evaluator) evalIfExpression(ie *ast.IfExpression, env *objects.Environment) objects.Object {
	condition := e.Eval(ie.Condition, env)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return e.Eval(ie.Alternative, env)
	}
	return objects.NULL
}

// isTruthy implements the language's truthiness rule: only FALSE and NULL
// are falsy. Integer zero and the empty string are truthy.
func isTruthy(obj objects.Object) bool {
	switch obj {
	case objects.NULL:
		return false
	case objects.TRUE:
		return true
	case objects.FALSE:
		return false
	default:
		return true
	}
}
