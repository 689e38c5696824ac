package dsl

import (
	oas "github.com/reoring/oasbuild"
)

// DiscriminatorBuilder accumulates value-to-pointer pairs for a
// discriminator, in call order. It never checks that a mapped value exists
// among the enclosing composition's members; that is downstream tooling's
// concern.
type DiscriminatorBuilder struct {
	property string
	mapping  *oas.OrderedMap[string]
}

// Discriminator starts a builder for the given selecting property.
func Discriminator(property string) *DiscriminatorBuilder {
	return &DiscriminatorBuilder{property: property}
}

// Mapping adds a value-to-schema pair. The schema name follows the usual
// prefix rule: bare names get the components path, absolute fragments pass
// through.
func (b *DiscriminatorBuilder) Mapping(value, name string) *DiscriminatorBuilder {
	if b.mapping == nil {
		b.mapping = oas.NewOrderedMap[string]()
	}
	b.mapping.Set(value, oas.SchemaPath(name))
	return b
}

// MappingOf adds a pair whose pointer is named after v's Go type.
// Panics on unnamed types, like oas.MustRefOf.
func (b *DiscriminatorBuilder) MappingOf(value string, v any) *DiscriminatorBuilder {
	if b.mapping == nil {
		b.mapping = oas.NewOrderedMap[string]()
	}
	b.mapping.Set(value, oas.MustRefOf(v).Ref())
	return b
}

// Build returns the discriminator. Mapping stays nil when no pairs were
// added, so an empty mapping never reaches the wire.
func (b *DiscriminatorBuilder) Build() *oas.Discriminator {
	return &oas.Discriminator{PropertyName: b.property, Mapping: b.mapping}
}
