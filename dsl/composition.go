package dsl

import (
	oas "github.com/reoring/oasbuild"
)

// The three composition builders share one contract: three ways to add an
// entry — by name, by Go type, or by nested builder block — appended in call
// order. Build returns the sequence verbatim: duplicates are kept and
// nothing is validated.

// OneOfBuilder accumulates the members of a oneOf slot.
type OneOfBuilder struct {
	refs oas.SchemaRefs
}

// OneOf starts an empty oneOf accumulator.
func OneOf() *OneOfBuilder { return &OneOfBuilder{} }

// Schema appends a pointer to the named schema. Bare names get the canonical
// components prefix; absolute fragments pass through unchanged.
func (b *OneOfBuilder) Schema(name string) *OneOfBuilder {
	b.refs = append(b.refs, oas.NewRef(name))
	return b
}

// SchemaOf appends a pointer named after v's Go type.
// Panics on unnamed types, like oas.MustRefOf.
func (b *OneOfBuilder) SchemaOf(v any) *OneOfBuilder {
	b.refs = append(b.refs, oas.MustRefOf(v))
	return b
}

// SchemaFunc appends an inline schema built by fn.
func (b *OneOfBuilder) SchemaFunc(fn func(*SchemaBuilder)) *OneOfBuilder {
	b.refs = append(b.refs, Inline(fn))
	return b
}

// Ref appends an existing reference as-is.
func (b *OneOfBuilder) Ref(r *oas.SchemaRef) *OneOfBuilder {
	b.refs = append(b.refs, r)
	return b
}

// Build returns the entries in call order.
func (b *OneOfBuilder) Build() oas.SchemaRefs { return b.refs }

// AllOfBuilder accumulates the members of an allOf slot.
type AllOfBuilder struct {
	refs oas.SchemaRefs
}

// AllOf starts an empty allOf accumulator.
func AllOf() *AllOfBuilder { return &AllOfBuilder{} }

// Schema appends a pointer to the named schema.
func (b *AllOfBuilder) Schema(name string) *AllOfBuilder {
	b.refs = append(b.refs, oas.NewRef(name))
	return b
}

// SchemaOf appends a pointer named after v's Go type.
func (b *AllOfBuilder) SchemaOf(v any) *AllOfBuilder {
	b.refs = append(b.refs, oas.MustRefOf(v))
	return b
}

// SchemaFunc appends an inline schema built by fn.
func (b *AllOfBuilder) SchemaFunc(fn func(*SchemaBuilder)) *AllOfBuilder {
	b.refs = append(b.refs, Inline(fn))
	return b
}

// Ref appends an existing reference as-is.
func (b *AllOfBuilder) Ref(r *oas.SchemaRef) *AllOfBuilder {
	b.refs = append(b.refs, r)
	return b
}

// Build returns the entries in call order.
func (b *AllOfBuilder) Build() oas.SchemaRefs { return b.refs }

// AnyOfBuilder accumulates the members of an anyOf slot.
type AnyOfBuilder struct {
	refs oas.SchemaRefs
}

// AnyOf starts an empty anyOf accumulator.
func AnyOf() *AnyOfBuilder { return &AnyOfBuilder{} }

// Schema appends a pointer to the named schema.
func (b *AnyOfBuilder) Schema(name string) *AnyOfBuilder {
	b.refs = append(b.refs, oas.NewRef(name))
	return b
}

// SchemaOf appends a pointer named after v's Go type.
func (b *AnyOfBuilder) SchemaOf(v any) *AnyOfBuilder {
	b.refs = append(b.refs, oas.MustRefOf(v))
	return b
}

// SchemaFunc appends an inline schema built by fn.
func (b *AnyOfBuilder) SchemaFunc(fn func(*SchemaBuilder)) *AnyOfBuilder {
	b.refs = append(b.refs, Inline(fn))
	return b
}

// Ref appends an existing reference as-is.
func (b *AnyOfBuilder) Ref(r *oas.SchemaRef) *AnyOfBuilder {
	b.refs = append(b.refs, r)
	return b
}

// Build returns the entries in call order.
func (b *AnyOfBuilder) Build() oas.SchemaRefs { return b.refs }
