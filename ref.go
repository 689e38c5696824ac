package oasbuild

import (
	"fmt"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
)

// componentsPrefix is the canonical location of named schemas inside an
// OpenAPI document.
const componentsPrefix = "#/components/schemas/"

// SchemaPath turns a bare schema name into a components pointer. Arguments
// that already look like absolute fragments (leading "#/") pass through
// unchanged, allowing callers to point anywhere in the document.
func SchemaPath(name string) string {
	if strings.HasPrefix(name, "#/") {
		return name
	}
	return componentsPrefix + name
}

// SchemaRef is the closed two-variant union used inside composition slots:
// either a pointer to a named schema or a fully inline schema. Exactly one
// variant is populated; the constructors below are the only way to build one.
//
// On the wire both variants flatten into the shape a bare Schema would
// produce: a Ref becomes an object whose only key is "$ref", an Inline is
// the wrapped schema itself with no wrapper key. Decoding branches purely on
// the presence of "$ref", which is why a Schema must never mix a pointer
// with other content.
type SchemaRef struct {
	ref    string
	schema *Schema
}

// SchemaRefs is an ordered sequence of references, the payload of a
// composition slot.
type SchemaRefs []*SchemaRef

// NewRef builds the pointer variant. Bare names are prefixed with the
// canonical components path; absolute fragments are kept as-is. The pointer
// is never resolved or checked — dangling paths pass through untouched.
func NewRef(name string) *SchemaRef {
	return &SchemaRef{ref: SchemaPath(name)}
}

// NewRefType derives the pointer from the type's simple name, unwrapping
// pointers first. Unnamed types have no usable name and fail with
// ErrUnnamedType.
func NewRefType(t reflect.Type) (*SchemaRef, error) {
	name, err := typeName(t)
	if err != nil {
		return nil, err
	}
	return NewRef(name), nil
}

// NewRefOf derives the pointer from the dynamic type of v.
func NewRefOf(v any) (*SchemaRef, error) {
	return NewRefType(reflect.TypeOf(v))
}

// MustRefOf is like NewRefOf but panics on unnamed types. It exists for
// fluent builder chains where an error return has nowhere to go.
func MustRefOf(v any) *SchemaRef {
	r, err := NewRefOf(v)
	if err != nil {
		panic(err)
	}
	return r
}

// NewInline builds the inline variant, taking ownership of s.
func NewInline(s *Schema) *SchemaRef {
	return &SchemaRef{schema: s}
}

// IsRef reports whether r holds the pointer variant.
func (r *SchemaRef) IsRef() bool { return r.ref != "" }

// Ref returns the pointer string, empty for the inline variant.
func (r *SchemaRef) Ref() string { return r.ref }

// Schema returns the inline schema, nil for the pointer variant.
func (r *SchemaRef) Schema() *Schema { return r.schema }

// Or concatenates r with more references into a oneOf-shaped sequence,
// letting alternatives be written left to right without a builder block.
func (r *SchemaRef) Or(others ...*SchemaRef) SchemaRefs {
	return append(SchemaRefs{r}, others...)
}

// And concatenates r with more references into an allOf-shaped sequence.
func (r *SchemaRef) And(others ...*SchemaRef) SchemaRefs {
	return append(SchemaRefs{r}, others...)
}

// Or appends more references, preserving order.
func (rs SchemaRefs) Or(others ...*SchemaRef) SchemaRefs {
	return append(rs, others...)
}

// And appends more references, preserving order.
func (rs SchemaRefs) And(others ...*SchemaRef) SchemaRefs {
	return append(rs, others...)
}

// MarshalJSON flattens the union into the shared wire grammar.
func (r *SchemaRef) MarshalJSON() ([]byte, error) {
	if r.ref != "" {
		return json.Marshal(&Schema{Ref: r.ref})
	}
	if r.schema == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.schema)
}

// UnmarshalJSON decodes the wire value as a generic Schema and lifts it back
// into the union: a non-empty $ref becomes the pointer variant, anything
// else wraps the whole parsed body as inline.
func (r *SchemaRef) UnmarshalJSON(data []byte) error {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s.Ref != "" {
		r.ref = s.Ref
		r.schema = nil
		return nil
	}
	r.ref = ""
	r.schema = &s
	return nil
}

// typeName resolves the simple name of t, unwrapping pointers.
func typeName(t reflect.Type) (string, error) {
	if t == nil {
		return "", fmt.Errorf("oasbuild: nil type: %w", ErrUnnamedType)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "", fmt.Errorf("oasbuild: %s: %w", t, ErrUnnamedType)
	}
	return t.Name(), nil
}
