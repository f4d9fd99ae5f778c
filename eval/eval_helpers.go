/*
File    : monkey-lang/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/objects"
)

// evalIdentifier resolves name against env first, then the built-in
// registry. Neither hit produces Error("identifier not found: <name>").
func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *objects.Environment) objects.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := objects.Builtins[node.Value]; ok {
		return builtin
	}
	return newError("identifier not found: " + node.Value)
}

// evalExpressions evaluates exprs left to right, stopping at and
// returning only the first error encountered — the caller recognizes this
// short-circuit by checking len(result) == 1 && isError(result[0]).
func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *objects.Environment) []objects.Object {
	result := make([]objects.Object, 0, len(exprs))

	for _, expr := range exprs {
		evaluated := e.Eval(expr, env)
		if isError(evaluated) {
			return []objects.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// applyFunction calls fn with args: a user Function gets a fresh
// environment enclosing its captured one with parameters bound
// positionally (missing arguments leave the parameter unbound, which
// resolves to an "identifier not found" error if referenced — arity
// mismatch is intentionally unchecked here), a Builtin is invoked
// directly, and anything else is Error("not a function: <TYPE>").
func (e *Evaluator) applyFunction(fn objects.Object, args []objects.Object) objects.Object {
	switch fn := fn.(type) {
	case *objects.Function:
		extendedEnv := extendFunctionEnv(fn, args)
		evaluated := e.Eval(fn.Body, extendedEnv)
		return unwrapReturnValue(evaluated)
	case *objects.Builtin:
		return fn.Fn(e.Writer, args...)
	default:
		return newError("not a function: %s", fn.Type())
	}
}

func extendFunctionEnv(fn *objects.Function, args []objects.Object) *objects.Environment {
	env := objects.NewEnclosedEnvironment(fn.Env)

	for i, param := range fn.Parameters {
		if i < len(args) {
			env.Set(param.Value, args[i])
		}
	}

	return env
}

// unwrapReturnValue strips the ReturnValue wrapper at the function-call
// boundary so a `return` inside a nested block doesn't keep propagating
// past the function that contains it.
func unwrapReturnValue(obj objects.Object) objects.Object {
	if returnValue, ok := obj.(*objects.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}
