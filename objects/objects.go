/*
File    : monkey-lang/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the closed set of runtime value types produced by
// evaluating Monkey source: integers, booleans, strings, arrays, hashes,
// functions, builtins, and the internal control-flow/error carriers. Every
// value implements Object, which provides type identification (Type) and a
// human-readable rendering (Inspect) used by the REPL and puts().
package objects

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/akashmaji946/monkey-lang/ast"
)

// ObjectType identifies which of the closed set of runtime kinds a value
// belongs to.
type ObjectType string

const (
	INTEGER_OBJ      ObjectType = "INTEGER"
	BOOLEAN_OBJ      ObjectType = "BOOLEAN"
	NULL_OBJ         ObjectType = "NULL"
	STRING_OBJ       ObjectType = "STRING"
	ARRAY_OBJ        ObjectType = "ARRAY"
	HASH_OBJ         ObjectType = "HASH"
	FUNCTION_OBJ     ObjectType = "FUNCTION"
	BUILTIN_OBJ      ObjectType = "BUILTIN"
	RETURN_VALUE_OBJ ObjectType = "RETURN_VALUE"
	ERROR_OBJ        ObjectType = "ERROR"
)

// Object is implemented by every runtime value.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer wraps a 64-bit signed integer. There is no floating-point type.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Boolean wraps true/false. Evaluation always hands out the shared TRUE/
// FALSE singletons rather than allocating, so pointer equality on *Boolean
// is meaningful.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

// Null is the single absence-of-value type. The shared NULL singleton is
// what every built-in and statement that "returns nothing" actually
// returns.
type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "null" }

// String wraps a sequence of bytes. Length, per the language's string
// builtin, counts bytes rather than Unicode code points.
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

// ReturnValue carries the result of a return statement up through nested
// block evaluation. It is never visible to Monkey code itself — Eval
// unwraps it at the function-call boundary — but it has to be a bona fide
// Object so the same Eval function can return it from block statements.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error carries a diagnostic message produced by the evaluator. Like
// ReturnValue, it propagates up through block/call evaluation unwrapped by
// ordinary expression evaluation, short-circuiting whatever would have run
// next.
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }

// Function is a closure: the parameter list and body come straight from
// the ast.FunctionLiteral that produced it, and Env is the environment
// active at the point the literal was evaluated — captured by reference,
// not copied, so that mutations to enclosing bindings after the closure is
// created are visible inside it.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}

// Array is an ordered, heterogeneous, mutable-by-replacement sequence of
// values.
type Array struct {
	Elements []Object
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var out bytes.Buffer
	elems := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		elems = append(elems, e.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elems, ", "))
	out.WriteString("]")
	return out.String()
}

// HashKey is the comparable value used to index HashPairs. Two Hashable
// objects that are == as Monkey values (same integer, same boolean, same
// string contents) always produce equal HashKeys.
type HashKey struct {
	Type  ObjectType
	Value uint64
}

// Hashable is implemented by the object types that may be used as hash
// keys: Integer, Boolean, and String.
type Hashable interface {
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey {
	return HashKey{Type: i.Type(), Value: uint64(i.Value)}
}

func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: b.Type(), Value: v}
}

func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: s.Type(), Value: h.Sum64()}
}

// HashPair retains the original key object alongside the looked-up value
// so Inspect can render "key: value" instead of the opaque HashKey.
type HashPair struct {
	Key   Object
	Value Object
}

// Hash is the language's sole associative-collection type: insertion
// order is tracked in Order so that puts() and Inspect render pairs
// deterministically instead of at map-iteration's mercy.
type Hash struct {
	Pairs map[HashKey]HashPair
	Order []HashKey
}

func (h *Hash) Type() ObjectType { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(h.Order))
	for _, key := range h.Order {
		pair := h.Pairs[key]
		pairs = append(pairs, fmt.Sprintf("%s: %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}

// Set inserts or overwrites the pair (key, value), appending key to Order
// only the first time it is seen so repeated assignment to an existing key
// doesn't reorder the hash.
func (h *Hash) Set(key Object, hashable Hashable, value Object) {
	hk := hashable.HashKey()
	if _, exists := h.Pairs[hk]; !exists {
		h.Order = append(h.Order, hk)
	}
	h.Pairs[hk] = HashPair{Key: key, Value: value}
}

// NewHash builds an empty Hash ready for Set calls.
func NewHash() *Hash {
	return &Hash{Pairs: make(map[HashKey]HashPair)}
}

// Shared singletons. Evaluation always hands these out for true, false,
// and null instead of allocating fresh ones, so simple pointer comparison
// works where it matters (e.g. the evaluator's truthiness checks).
var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)
