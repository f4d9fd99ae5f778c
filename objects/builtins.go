/*
File    : monkey-lang/objects/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects - builtins.go defines the fixed registry of built-in
// functions that the evaluator falls back to when an identifier lookup
// misses in the environment chain. The registry is closed: six names,
// fixed arities, and the exact error strings below are part of the
// language's external contract.
package objects

import (
	"fmt"
	"io"
)

// BuiltinFunction is the Go implementation behind a builtin name. out is
// where puts() writes — the evaluator passes its own configured writer, so
// a REPL server session's puts output reaches that client's connection
// rather than the host process's real stdout. The other five builtins
// ignore out.
type BuiltinFunction func(out io.Writer, args ...Object) Object

// Builtin wraps a BuiltinFunction as an Object so it can be looked up and
// called exactly like a user-defined Function.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin function" }

// Builtins maps each built-in name to its implementation. The evaluator
// consults this only after failing to resolve an identifier through the
// environment chain, so a user binding named e.g. "len" shadows the
// built-in rather than colliding with it.
var Builtins = map[string]*Builtin{
	"len":   {Fn: builtinLen},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
	"puts":  {Fn: builtinPuts},
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func wrongArity(expected, got int) *Error {
	return newError("wrong number of arguments. expected=%d, got=%d", expected, got)
}

func builtinLen(_ io.Writer, args ...Object) Object {
	if len(args) != 1 {
		return wrongArity(1, len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to 'len' not supported, got %s", arg.Type())
	}
}

func builtinFirst(_ io.Writer, args ...Object) Object {
	if len(args) != 1 {
		return wrongArity(1, len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'first' not supported, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

func builtinLast(_ io.Writer, args ...Object) Object {
	if len(args) != 1 {
		return wrongArity(1, len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'last' not supported, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(_ io.Writer, args ...Object) Object {
	if len(args) != 1 {
		return wrongArity(1, len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'rest' not supported, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	newElements := make([]Object, length-1)
	copy(newElements, arr.Elements[1:length])
	return &Array{Elements: newElements}
}

func builtinPush(_ io.Writer, args ...Object) Object {
	if len(args) != 2 {
		return wrongArity(2, len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'push' must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &Array{Elements: newElements}
}

func builtinPuts(out io.Writer, args ...Object) Object {
	for _, arg := range args {
		fmt.Fprintln(out, arg.Inspect())
	}
	return NULL
}
