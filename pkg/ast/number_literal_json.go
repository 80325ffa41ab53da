package ast

import "encoding/json"

// MarshalJSON writes the literal's value as a bare JSON number so dumps keep
// full precision.
func (lit *NumberLiteral) MarshalJSON() ([]byte, error) {
	if lit == nil {
		return []byte("null"), nil
	}
	value := "0"
	if lit.Value != nil {
		value = lit.Value.String()
	}
	payload := struct {
		Type  NodeType        `json:"type"`
		Value json.RawMessage `json:"value"`
	}{
		Type:  lit.Type,
		Value: json.RawMessage(value),
	}
	return json.Marshal(payload)
}
