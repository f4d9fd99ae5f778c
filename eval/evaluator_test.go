/*
File    : monkey-lang/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/monkey-lang/objects"
	"github.com/akashmaji946/monkey-lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEval(input string) objects.Object {
	p := parser.NewParser(input)
	program := p.ParseProgram()
	env := objects.NewEnvironment()
	return NewEvaluator().Eval(program, env)
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"7 / 2", 3},
	}

	for _, tt := range tests {
		assertIntegerObject(t, testEval(tt.input), tt.expected)
	}
}

func TestDivisionByZero(t *testing.T) {
	result := testEval("5 / 0")
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "division by zero", errObj.Message)
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
	}

	for _, tt := range tests {
		assertBooleanObject(t, testEval(tt.input), tt.expected)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
		{"!0", false},
	}

	for _, tt := range tests {
		assertBooleanObject(t, testEval(tt.input), tt.expected)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", int64(10)},
		{"if (0) { 10 }", int64(10)},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
	}

	for _, tt := range tests {
		evaluated := testEval(tt.input)
		if expected, ok := tt.expected.(int64); ok {
			assertIntegerObject(t, evaluated, expected)
		} else {
			assertNullObject(t, evaluated)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{"if (10 > 1) { if (10 > 1) { return 10; } return 1; }", 10},
	}

	for _, tt := range tests {
		assertIntegerObject(t, testEval(tt.input), tt.expected)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + true;", "type mismatch: INTEGER + BOOLEAN"},
		{"5 + true; 5;", "type mismatch: INTEGER + BOOLEAN"},
		{"-true", "unknown operator: -BOOLEAN"},
		{"true + false;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"5; true + false; 5", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { true + false; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{
			"if (10 > 1) { if (10 > 1) { return true + false; } return 1; }",
			"unknown operator: BOOLEAN + BOOLEAN",
		},
		{"foobar", "identifier not found: foobar"},
		{`"Hello" - "World"`, "unknown operator: STRING - STRING"},
		{`len(1)`, "argument to 'len' not supported, got INTEGER"},
		{`len("one", "two")`, "wrong number of arguments. expected=1, got=2"},
	}

	for _, tt := range tests {
		evaluated := testEval(tt.input)
		errObj, ok := evaluated.(*objects.Error)
		require.Truef(t, ok, "no error returned for %q, got %T (%+v)", tt.input, evaluated, evaluated)
		assert.Equal(t, tt.expected, errObj.Message)
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		assertIntegerObject(t, testEval(tt.input), tt.expected)
	}
}

func TestFunctionObject(t *testing.T) {
	evaluated := testEval("fn(x) { x + 2; };")
	fn, ok := evaluated.(*objects.Function)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "x", fn.Parameters[0].String())
	assert.Equal(t, "(x + 2)", fn.Body.String())
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
	}

	for _, tt := range tests {
		assertIntegerObject(t, testEval(tt.input), tt.expected)
	}
}

func TestClosures(t *testing.T) {
	input := `
	let newAdder = fn(x) {
		fn(y) { x + y };
	};
	let addTwo = newAdder(2);
	addTwo(2);`

	assertIntegerObject(t, testEval(input), int64(4))
}

// TestClosureSharesEnvironmentByReference pins down that a closure's
// captured environment is the live environment, not a snapshot: rebinding
// "value" in the enclosing scope after the closure literal was created is
// still visible when the closure is later called.
func TestClosureSharesEnvironmentByReference(t *testing.T) {
	input := `
	let makeGetter = fn() {
		let value = 10;
		let getValue = fn() { value };
		let value = 20;
		getValue;
	};
	let getValue = makeGetter();
	getValue();`

	assertIntegerObject(t, testEval(input), int64(20))
}

func TestStringLiteral(t *testing.T) {
	evaluated := testEval(`"Hello World!"`)
	str, ok := evaluated.(*objects.String)
	require.True(t, ok)
	assert.Equal(t, "Hello World!", str.Value)
}

func TestStringConcatenation(t *testing.T) {
	evaluated := testEval(`"Hello" + " " + "World!"`)
	str, ok := evaluated.(*objects.String)
	require.True(t, ok)
	assert.Equal(t, "Hello World!", str.Value)
}

func TestBuiltinFunctions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`len("")`, int64(0)},
		{`len("four")`, int64(4)},
		{`len("hello world")`, int64(11)},
		{`len([1, 2, 3])`, int64(3)},
		{`len([])`, int64(0)},
		{`first([1, 2, 3])`, int64(1)},
		{`first([])`, nil},
		{`last([1, 2, 3])`, int64(3)},
		{`last([])`, nil},
		{`rest([1, 2, 3])`, []int64{2, 3}},
		{`rest([])`, nil},
		{`push([1], 2)`, []int64{1, 2}},
	}

	for _, tt := range tests {
		evaluated := testEval(tt.input)
		switch expected := tt.expected.(type) {
		case int64:
			assertIntegerObject(t, evaluated, expected)
		case nil:
			assertNullObject(t, evaluated)
		case []int64:
			arr, ok := evaluated.(*objects.Array)
			require.True(t, ok)
			require.Len(t, arr.Elements, len(expected))
			for i, v := range expected {
				assertIntegerObject(t, arr.Elements[i], v)
			}
		}
	}
}

func TestPutsWritesToConfiguredWriter(t *testing.T) {
	p := parser.NewParser(`puts("hi")`)
	program := p.ParseProgram()
	env := objects.NewEnvironment()

	var buf bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buf)
	result := evaluator.Eval(program, env)

	assertNullObject(t, result)
	assert.Equal(t, "hi\n", buf.String())
}

func TestArrayLiterals(t *testing.T) {
	evaluated := testEval("[1, 2 * 2, 3 + 3]")
	arr, ok := evaluated.(*objects.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
	assertIntegerObject(t, arr.Elements[0], 1)
	assertIntegerObject(t, arr.Elements[1], 4)
	assertIntegerObject(t, arr.Elements[2], 6)
}

func TestArrayIndexExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"[1, 2, 3][0]", int64(1)},
		{"[1, 2, 3][1]", int64(2)},
		{"[1, 2, 3][2]", int64(3)},
		{"let i = 0; [1][i];", int64(1)},
		{"[1, 2, 3][1 + 1];", int64(3)},
		{"let myArray = [1, 2, 3]; myArray[2];", int64(3)},
		{"let myArray = [1, 2, 3]; myArray[0] + myArray[1] + myArray[2];", int64(6)},
		{"[1, 2, 3][3]", nil},
		{"[1, 2, 3][-1]", nil},
	}

	for _, tt := range tests {
		evaluated := testEval(tt.input)
		if expected, ok := tt.expected.(int64); ok {
			assertIntegerObject(t, evaluated, expected)
		} else {
			assertNullObject(t, evaluated)
		}
	}
}

func TestHashLiterals(t *testing.T) {
	input := `let two = "two";
	{
		"one": 10 - 9,
		two: 1 + 1,
		"thr" + "ee": 6 / 2,
		4: 4,
		true: 5,
		false: 6
	}`

	evaluated := testEval(input)
	result, ok := evaluated.(*objects.Hash)
	require.True(t, ok)

	expected := map[objects.HashKey]int64{
		(&objects.String{Value: "one"}).HashKey():   1,
		(&objects.String{Value: "two"}).HashKey():   2,
		(&objects.String{Value: "three"}).HashKey(): 3,
		(&objects.Integer{Value: 4}).HashKey():      4,
		objects.TRUE.HashKey():                      5,
		objects.FALSE.HashKey():                     6,
	}

	require.Len(t, result.Pairs, len(expected))

	for expectedKey, expectedValue := range expected {
		pair, ok := result.Pairs[expectedKey]
		require.True(t, ok)
		assertIntegerObject(t, pair.Value, expectedValue)
	}
}

func TestHashLiteralDuplicateKeyLastWriteWins(t *testing.T) {
	evaluated := testEval(`{"a": 1, "a": 2}["a"]`)
	assertIntegerObject(t, evaluated, 2)
}

func TestHashIndexExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{`{"foo": 5}["foo"]`, int64(5)},
		{`{"foo": 5}["bar"]`, nil},
		{`let key = "foo"; {"foo": 5}[key]`, int64(5)},
		{`{}["foo"]`, nil},
		{`{5: 5}[5]`, int64(5)},
		{`{true: 5}[true]`, int64(5)},
		{`{false: 5}[false]`, int64(5)},
	}

	for _, tt := range tests {
		evaluated := testEval(tt.input)
		if expected, ok := tt.expected.(int64); ok {
			assertIntegerObject(t, evaluated, expected)
		} else {
			assertNullObject(t, evaluated)
		}
	}
}

func TestHashableKeyTypeError(t *testing.T) {
	evaluated := testEval(`{"name": "Monkey"}[fn(x) { x }]`)
	errObj, ok := evaluated.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "unusable as hash key: FUNCTION", errObj.Message)
}

func assertIntegerObject(t *testing.T, obj objects.Object, expected int64) {
	t.Helper()
	result, ok := obj.(*objects.Integer)
	require.Truef(t, ok, "object is not Integer, got %T (%+v)", obj, obj)
	assert.Equal(t, expected, result.Value)
}

func assertBooleanObject(t *testing.T, obj objects.Object, expected bool) {
	t.Helper()
	result, ok := obj.(*objects.Boolean)
	require.Truef(t, ok, "object is not Boolean, got %T (%+v)", obj, obj)
	assert.Equal(t, expected, result.Value)
}

func assertNullObject(t *testing.T, obj objects.Object) {
	t.Helper()
	assert.Equal(t, objects.NULL, obj)
}
