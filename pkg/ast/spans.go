package ast

import "strconv"

// SetSpan annotates the node with the provided span. The parser calls it
// once, while the node is still under construction.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}

// ZeroSpan returns an empty span value.
func ZeroSpan() Span {
	return Span{}
}

// Cover returns the smallest span containing both a and b. Zero spans are
// ignored.
func Cover(a, b Span) Span {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	out := a
	if b.Start.before(out.Start) {
		out.Start = b.Start
	}
	if out.End.before(b.End) {
		out.End = b.End
	}
	return out
}

func (p Position) before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// String renders the position as line:column.
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
