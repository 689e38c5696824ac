package oasbuild

import (
	"fmt"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// The YAML side of the model is hand-built from yaml.Node values rather than
// left to reflection. Two things force this: properties and discriminator
// mappings must keep insertion order, and open "any JSON value" slots
// (default/enum/example) may hold json.Number values, which reflection would
// emit as quoted strings.

func yamlStr(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// MarshalYAML renders the schema as a mapping with fields in canonical
// order, omitting everything unset. Output is structurally identical to the
// JSON encoding.
func (s *Schema) MarshalYAML() (any, error) {
	return s.yamlNode()
}

// UnmarshalYAML always fails; see ErrYAMLDecodeUnsupported.
func (s *Schema) UnmarshalYAML(*yaml.Node) error {
	return ErrYAMLDecodeUnsupported
}

func (s *Schema) yamlNode() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	put := func(key string, v *yaml.Node) {
		n.Content = append(n.Content, yamlStr(key), v)
	}
	putAny := func(key string, v any) error {
		vn, err := anyNode(v)
		if err != nil {
			return fmt.Errorf("oasbuild: yaml encode %s: %w", key, err)
		}
		put(key, vn)
		return nil
	}

	if s.Ref != "" {
		put("$ref", yamlStr(s.Ref))
	}
	if s.Type != "" {
		put("type", yamlStr(s.Type))
	}
	if s.Format != "" {
		put("format", yamlStr(s.Format))
	}
	if s.Title != "" {
		put("title", yamlStr(s.Title))
	}
	if s.Description != "" {
		put("description", yamlStr(s.Description))
	}
	if s.Default != nil {
		if err := putAny("default", s.Default); err != nil {
			return nil, err
		}
	}
	if len(s.Enum) > 0 {
		en, err := anySeqNode(s.Enum)
		if err != nil {
			return nil, err
		}
		put("enum", en)
	}
	if s.Properties.Len() > 0 {
		pn, err := s.Properties.MarshalYAML()
		if err != nil {
			return nil, err
		}
		put("properties", pn.(*yaml.Node))
	}
	if len(s.Required) > 0 {
		rn := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, r := range s.Required {
			rn.Content = append(rn.Content, yamlStr(r))
		}
		put("required", rn)
	}
	if s.Items != nil {
		in, err := s.Items.yamlNode()
		if err != nil {
			return nil, err
		}
		put("items", in)
	}
	for _, slot := range []struct {
		key  string
		refs SchemaRefs
	}{{"oneOf", s.OneOf}, {"allOf", s.AllOf}, {"anyOf", s.AnyOf}} {
		if len(slot.refs) == 0 {
			continue
		}
		sn, err := refSeqNode(slot.refs)
		if err != nil {
			return nil, err
		}
		put(slot.key, sn)
	}
	if s.Not != nil {
		nn, err := s.Not.yamlNode()
		if err != nil {
			return nil, err
		}
		put("not", nn)
	}
	if s.Discriminator != nil {
		dn, err := s.Discriminator.yamlNode()
		if err != nil {
			return nil, err
		}
		put("discriminator", dn)
	}
	if s.Example != nil {
		if err := putAny("example", s.Example); err != nil {
			return nil, err
		}
	}
	if len(s.Examples) > 0 {
		en, err := anySeqNode(s.Examples)
		if err != nil {
			return nil, err
		}
		put("examples", en)
	}
	return n, nil
}

// MarshalYAML flattens the union exactly like the JSON codec does.
func (r *SchemaRef) MarshalYAML() (any, error) {
	return r.yamlNode()
}

// UnmarshalYAML always fails; see ErrYAMLDecodeUnsupported.
func (r *SchemaRef) UnmarshalYAML(*yaml.Node) error {
	return ErrYAMLDecodeUnsupported
}

func (r *SchemaRef) yamlNode() (*yaml.Node, error) {
	if r.ref != "" {
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		n.Content = append(n.Content, yamlStr("$ref"), yamlStr(r.ref))
		return n, nil
	}
	if r.schema == nil {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, nil
	}
	return r.schema.yamlNode()
}

// MarshalYAML renders propertyName plus the mapping pairs in call order.
func (d *Discriminator) MarshalYAML() (any, error) {
	return d.yamlNode()
}

// UnmarshalYAML always fails; see ErrYAMLDecodeUnsupported.
func (d *Discriminator) UnmarshalYAML(*yaml.Node) error {
	return ErrYAMLDecodeUnsupported
}

func (d *Discriminator) yamlNode() (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	n.Content = append(n.Content, yamlStr("propertyName"), yamlStr(d.PropertyName))
	if d.Mapping.Len() > 0 {
		mn, err := d.Mapping.MarshalYAML()
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, yamlStr("mapping"), mn.(*yaml.Node))
	}
	return n, nil
}

func refSeqNode(refs SchemaRefs) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, r := range refs {
		rn, err := r.yamlNode()
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, rn)
	}
	return n, nil
}

func anySeqNode(vs []any) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, v := range vs {
		vn, err := anyNode(v)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, vn)
	}
	return n, nil
}

// anyNode encodes an open "any JSON value" (null, bool, number, string,
// array, object) into a yaml.Node. yaml.v3 has no native primitive for this
// union, so the recursion is written out by hand. Boolean and numeric kinds
// are tested before the string fallback on purpose: a json.Number is
// string-kinded in Go and would otherwise serialize as a quoted scalar.
func anyNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}, nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return intNode(i), nil
		}
		if f, err := t.Float64(); err == nil {
			return floatNode(f), nil
		}
		return yamlStr(t.String()), nil
	case int:
		return intNode(int64(t)), nil
	case int8:
		return intNode(int64(t)), nil
	case int16:
		return intNode(int64(t)), nil
	case int32:
		return intNode(int64(t)), nil
	case int64:
		return intNode(t), nil
	case uint:
		return uintNode(uint64(t)), nil
	case uint8:
		return uintNode(uint64(t)), nil
	case uint16:
		return uintNode(uint64(t)), nil
	case uint32:
		return uintNode(uint64(t)), nil
	case uint64:
		return uintNode(t), nil
	case float32:
		return floatNode(float64(t)), nil
	case float64:
		return floatNode(t), nil
	case string:
		return yamlStr(t), nil
	case []any:
		return anySeqNode(t)
	case map[string]any:
		// sorted keys keep the output deterministic; Go maps have no order
		// worth preserving
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range keys {
			vn, err := anyNode(t[k])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, yamlStr(k), vn)
		}
		return n, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}
}

func intNode(i int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}
}

func uintNode(u uint64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(u, 10)}
}

func floatNode(f float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(f, 'g', -1, 64)}
}
