package codec

import (
	json "github.com/goccy/go-json"
)

// EncodeJSON serializes a built document (Schema, SchemaRef, or anything
// embedding them) to compact JSON. Unset and nil fields are omitted
// recursively: absence over null, all the way down through properties and
// composition lists.
func EncodeJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// EncodeJSONIndent is EncodeJSON with indentation for human-facing output.
func EncodeJSONIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// DecodeJSON parses JSON produced by EncodeJSON back into the model. The
// JSON direction round-trips; SchemaRef variants are rebuilt from the
// presence or absence of "$ref".
func DecodeJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
