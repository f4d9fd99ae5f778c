/*
File    : monkey-lang/eval/eval_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/monkey-lang/ast"
	"github.com/akashmaji946/monkey-lang/objects"
)

func (e *Evaluator) evalIndexExpression(left, index objects.Object) objects.Object {
	switch {
	case left.Type() == objects.ARRAY_OBJ && index.Type() == objects.INTEGER_OBJ:
		return evalArrayIndexExpression(left, index)
	case left.Type() == objects.HASH_OBJ:
		return e.evalHashIndexExpression(left, index)
	default:
		return newError("index operator not supported: %s", left.Type())
	}
}

func evalArrayIndexExpression(array, index objects.Object) objects.Object {
	arrayObject := array.(*objects.Array)
	idx := index.(*objects.Integer).Value
	max := int64(len(arrayObject.Elements) - 1)

	if idx < 0 || idx > max {
		return objects.NULL
	}

	return arrayObject.Elements[idx]
}

func (e *Evaluator) evalHashIndexExpression(hash, index objects.Object) objects.Object {
	hashObject := hash.(*objects.Hash)

	key, ok := index.(objects.Hashable)
	if !ok {
		return newError("unusable as hash key: %s", index.Type())
	}

	pair, ok := hashObject.Pairs[key.HashKey()]
	if !ok {
		return objects.NULL
	}

	return pair.Value
}

func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *objects.Environment) objects.Object {
	result := objects.NewHash()

	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key, env)
		if isError(key) {
			return key
		}

		hashKey, ok := key.(objects.Hashable)
		if !ok {
			return newError("unusable as hash key: %s", key.Type())
		}

		value := e.Eval(pair.Value, env)
		if isError(value) {
			return value
		}

		result.Set(key, hashKey, value)
	}

	return result
}
