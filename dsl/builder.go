package dsl

import (
	oas "github.com/reoring/oasbuild"
)

// SchemaBuilder is a single-use accumulator for one Schema value. Create it
// with Schema(), chain setters, then call Build() exactly once; the builder
// holds no state beyond the construction in progress and is discarded after.
//
// None of the setters validate. Reference syntax, cycle freedom and the
// mutual exclusion of $ref with other fields are caller responsibilities.
type SchemaBuilder struct {
	s *oas.Schema
}

// Schema starts a new builder.
func Schema() *SchemaBuilder {
	return &SchemaBuilder{s: &oas.Schema{}}
}

// Type sets the schema type, one of the oas.Type* constants.
func (b *SchemaBuilder) Type(t string) *SchemaBuilder {
	b.s.Type = t
	return b
}

// Format sets the format hint.
func (b *SchemaBuilder) Format(f string) *SchemaBuilder {
	b.s.Format = f
	return b
}

// Title sets the title.
func (b *SchemaBuilder) Title(t string) *SchemaBuilder {
	b.s.Title = t
	return b
}

// Description sets the description.
func (b *SchemaBuilder) Description(d string) *SchemaBuilder {
	b.s.Description = d
	return b
}

// Ref turns the whole schema slot into a pointer. Bare names get the
// canonical components prefix; absolute fragments pass through.
func (b *SchemaBuilder) Ref(name string) *SchemaBuilder {
	b.s.Ref = oas.SchemaPath(name)
	return b
}

// Default sets the default value.
func (b *SchemaBuilder) Default(v any) *SchemaBuilder {
	b.s.Default = v
	return b
}

// Enum sets the allowed values.
func (b *SchemaBuilder) Enum(vs ...any) *SchemaBuilder {
	b.s.Enum = vs
	return b
}

// Example sets a single example value.
func (b *SchemaBuilder) Example(v any) *SchemaBuilder {
	b.s.Example = v
	return b
}

// Examples sets the examples list.
func (b *SchemaBuilder) Examples(vs ...any) *SchemaBuilder {
	b.s.Examples = vs
	return b
}

// Property adds a property built by fn. Properties keep insertion order.
func (b *SchemaBuilder) Property(name string, fn func(*SchemaBuilder)) *SchemaBuilder {
	return b.PropertySchema(name, build(fn))
}

// PropertySchema adds an already-built property schema.
func (b *SchemaBuilder) PropertySchema(name string, s *oas.Schema) *SchemaBuilder {
	if b.s.Properties == nil {
		b.s.Properties = oas.NewOrderedMap[*oas.Schema]()
	}
	b.s.Properties.Set(name, s)
	return b
}

// Required appends names to the required list.
func (b *SchemaBuilder) Required(names ...string) *SchemaBuilder {
	b.s.Required = append(b.s.Required, names...)
	return b
}

// Items sets the array item schema built by fn.
func (b *SchemaBuilder) Items(fn func(*SchemaBuilder)) *SchemaBuilder {
	b.s.Items = build(fn)
	return b
}

// ItemsSchema sets an already-built array item schema.
func (b *SchemaBuilder) ItemsSchema(s *oas.Schema) *SchemaBuilder {
	b.s.Items = s
	return b
}

// OneOf populates the oneOf slot through a nested composition block.
func (b *SchemaBuilder) OneOf(fn func(*OneOfBuilder)) *SchemaBuilder {
	ob := OneOf()
	if fn != nil {
		fn(ob)
	}
	b.s.OneOf = ob.Build()
	return b
}

// OneOfRefs populates the oneOf slot directly, typically from the Or
// combinator.
func (b *SchemaBuilder) OneOfRefs(refs ...*oas.SchemaRef) *SchemaBuilder {
	b.s.OneOf = refs
	return b
}

// AllOf populates the allOf slot through a nested composition block.
func (b *SchemaBuilder) AllOf(fn func(*AllOfBuilder)) *SchemaBuilder {
	ab := AllOf()
	if fn != nil {
		fn(ab)
	}
	b.s.AllOf = ab.Build()
	return b
}

// AllOfRefs populates the allOf slot directly, typically from the And
// combinator.
func (b *SchemaBuilder) AllOfRefs(refs ...*oas.SchemaRef) *SchemaBuilder {
	b.s.AllOf = refs
	return b
}

// AnyOf populates the anyOf slot through a nested composition block.
func (b *SchemaBuilder) AnyOf(fn func(*AnyOfBuilder)) *SchemaBuilder {
	ab := AnyOf()
	if fn != nil {
		fn(ab)
	}
	b.s.AnyOf = ab.Build()
	return b
}

// AnyOfRefs populates the anyOf slot directly.
func (b *SchemaBuilder) AnyOfRefs(refs ...*oas.SchemaRef) *SchemaBuilder {
	b.s.AnyOf = refs
	return b
}

// Not points the not slot at a named schema. The slot is single-valued:
// every Not* call replaces the previous value without warning.
func (b *SchemaBuilder) Not(name string) *SchemaBuilder {
	b.s.Not = oas.NewRef(name)
	return b
}

// NotOf points the not slot at the schema named after v's type.
// Panics on unnamed types, like oas.MustRefOf.
func (b *SchemaBuilder) NotOf(v any) *SchemaBuilder {
	b.s.Not = oas.MustRefOf(v)
	return b
}

// NotFunc fills the not slot with an inline schema built by fn.
func (b *SchemaBuilder) NotFunc(fn func(*SchemaBuilder)) *SchemaBuilder {
	b.s.Not = oas.NewInline(build(fn))
	return b
}

// Discriminator sets the discriminator. fn may be nil for a bare
// propertyName with no mapping.
func (b *SchemaBuilder) Discriminator(property string, fn func(*DiscriminatorBuilder)) *SchemaBuilder {
	db := Discriminator(property)
	if fn != nil {
		fn(db)
	}
	b.s.Discriminator = db.Build()
	return b
}

// Build returns the accumulated schema. The builder must not be reused.
func (b *SchemaBuilder) Build() *oas.Schema {
	return b.s
}

// Inline builds a nested schema and wraps it as the inline reference
// variant, for use inside composition slots.
func Inline(fn func(*SchemaBuilder)) *oas.SchemaRef {
	return oas.NewInline(build(fn))
}

func build(fn func(*SchemaBuilder)) *oas.Schema {
	sb := Schema()
	if fn != nil {
		fn(sb)
	}
	return sb.Build()
}
