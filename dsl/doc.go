// Package dsl provides the fluent construction surface for oasbuild.
//
// Overview
//   - Builder API: declare a schema with Schema()/Type()/Property()/Required()/Build().
//   - Composition: OneOf/AllOf/AnyOf blocks accumulate references in call order;
//     each accepts entries by name, by Go type, or by nested builder block.
//   - Discriminator: Discriminator(property).Mapping(value, name) collects an
//     ordered value-to-pointer map; zero pairs yield a nil mapping.
//   - Inline(fn): build a nested schema and wrap it as an inline reference.
//
// Entry points
//   - Schema(): create a schema builder; chain setters then Build().
//   - OneOf()/AllOf()/AnyOf(): standalone composition accumulators.
//   - Discriminator(property): standalone discriminator accumulator.
//
// Design guidelines
//   - Builders are single-use accumulators with no shared state; create one
//     per construction call and discard it after Build().
//   - Builders never validate: reference paths, duplicate entries and cycle
//     freedom are the caller's responsibility by design.
package dsl
