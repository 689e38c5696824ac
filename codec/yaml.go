package codec

import (
	"bytes"

	"github.com/reoring/oasbuild"
	"gopkg.in/yaml.v3"
)

// yamlIndent is the fixed indentation width for YAML output.
const yamlIndent = 2

// EncodeYAML serializes a built document to YAML. Structure matches
// EncodeJSON output field for field; open "any value" slots go through the
// model's hand-rolled node encoder, everything else through yaml.v3.
func EncodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeYAML always returns ErrYAMLDecodeUnsupported. The YAML direction is
// encode-only: generated documents feed text output, never a reload, and a
// silent empty decode would be worse than a deterministic failure.
func DecodeYAML([]byte, any) error {
	return oasbuild.ErrYAMLDecodeUnsupported
}
