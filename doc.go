package oasbuild

// Package oasbuild provides:
//
// - A recursive Schema/SchemaRef model in the shape of OpenAPI Schema objects
// - Composition slots (oneOf/allOf/anyOf/not/discriminator) with order-preserving accumulation
// - Dual one-way encoders: JSON (goccy/go-json) and YAML (yaml.v3, encode only)
// - Reflection-based derivation of a flat object schema from a Go struct type
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the builder DSL under dsl/, encoder entry points under codec/,
//   and the document embedding surface under openapi/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Schema().
//		OneOf(func(b *dsl.OneOfBuilder) {
//			b.Schema("Dog")
//			b.Schema("Cat")
//		}).
//		Build()
//	out, err := codec.EncodeJSON(s)
//
// The library only produces documents. It never validates data against a
// schema, never resolves $ref pointers, and never decodes YAML.
