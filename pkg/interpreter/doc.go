// Package interpreter executes Aero programs by walking the syntax tree
// produced by the parser. All bindings live in one flat environment per
// interpreter; host functions such as print are dispatched through a table
// keyed by runtime.BuiltinID.
package interpreter
