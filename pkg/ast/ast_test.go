package ast

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"
)

func TestNodeTypes(t *testing.T) {
	cases := []struct {
		node Node
		want NodeType
	}{
		{Prog(), NodeProgram},
		{Block(), NodeBlock},
		{Assign("x", Int(1)), NodeAssign},
		{If(Bool(true), Block(), nil), NodeIf},
		{While(Bool(false), Block()), NodeWhile},
		{Bin("+", Int(1), Int(2)), NodeBinaryOp},
		{CallNamed("print"), NodeCall},
		{ID("x"), NodeIdentifier},
		{Int(3), NodeNumber},
		{Str("s"), NodeString},
		{Bool(false), NodeBool},
	}
	for _, c := range cases {
		if got := c.node.NodeType(); got != c.want {
			t.Fatalf("NodeType() = %s, want %s", got, c.want)
		}
	}
}

func TestSetSpanAndCover(t *testing.T) {
	left := ID("a")
	right := ID("b")
	SetSpan(left, Span{Start: Position{1, 1}, End: Position{1, 2}})
	SetSpan(right, Span{Start: Position{2, 3}, End: Position{2, 4}})
	got := Cover(left.Span(), right.Span())
	want := Span{Start: Position{1, 1}, End: Position{2, 4}}
	if got != want {
		t.Fatalf("Cover = %+v, want %+v", got, want)
	}
	if Cover(ZeroSpan(), right.Span()) != right.Span() {
		t.Fatalf("Cover should ignore a zero span")
	}
	if got := left.Span().Start.String(); got != "1:1" {
		t.Fatalf("Position.String() = %q", got)
	}
}

func TestRender(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{ID("print"), "print"},
		{Int(42), "42"},
		{Str("hi"), `"hi"`},
		{Bin("*", Bin("+", Int(1), Int(2)), Int(3)), "(1 + 2) * 3"},
		{Call(CallNamed("f", ID("a")), ID("b")), "f(a)(b)"},
		{CallNamed("print", Str("a"), Bool(true)), `print("a", true)`},
		{Assign("x", Bin("-", ID("x"), Int(1))), "x = x - 1"},
		{If(ID("c"), Block(Assign("y", Int(1))), Block()), "if (c) { y = 1 } else { }"},
		{While(Bool(false), Block(ID("a"), ID("b"))), "while (false) { a; b }"},
	}
	for _, c := range cases {
		if got := Render(c.node); got != c.want {
			t.Fatalf("Render = %q, want %q", got, c.want)
		}
	}
}

func TestNumberLiteralJSONKeepsPrecision(t *testing.T) {
	n, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	data, err := json.Marshal(Prog(Assign("x", IntBig(n))))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"value":123456789012345678901234567890`) {
		t.Fatalf("unexpected JSON: %s", data)
	}
	if !strings.Contains(string(data), `"type":"Assign"`) {
		t.Fatalf("missing node type in JSON: %s", data)
	}
}
