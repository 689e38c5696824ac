// Package codec holds the serialization entry points for oasbuild
// documents: JSON (both directions, via goccy/go-json) and YAML (encode
// only, via yaml.v3). Both encoders are pure functions over already-built
// immutable values and are safe to call concurrently.
package codec
