package oasbuild

import "errors"

// ErrUnnamedType is returned when schema derivation or reference construction
// is attempted on a type with no retrievable simple name (anonymous structs,
// unnamed composites). Callers must not swallow it; there is no fallback name.
var ErrUnnamedType = errors.New("oasbuild: type has no name")

// ErrYAMLDecodeUnsupported is returned by every YAML decode entry point.
// The YAML side of this library is encode-only: documents are produced for
// text output and never reloaded, so the decode direction fails fast instead
// of silently yielding an empty model.
var ErrYAMLDecodeUnsupported = errors.New("oasbuild: yaml decode is not supported")
