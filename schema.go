package oasbuild

// Schema type names as used by OpenAPI / JSON Schema documents.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeNull    = "null"
)

// Schema is the recursive document node. A zero Schema serializes to an
// empty object; every field is optional and omitted when unset.
//
// A Schema whose Ref is set stands for a pure pointer and should carry no
// other fields. The library documents this invariant rather than enforcing
// it: builders never populate both, and encoders emit whatever is present.
type Schema struct {
	Ref           string               `json:"$ref,omitempty"`
	Type          string               `json:"type,omitempty"`
	Format        string               `json:"format,omitempty"`
	Title         string               `json:"title,omitempty"`
	Description   string               `json:"description,omitempty"`
	Default       any                  `json:"default,omitempty"`
	Enum          []any                `json:"enum,omitempty"`
	Properties    *OrderedMap[*Schema] `json:"properties,omitempty"`
	Required      []string             `json:"required,omitempty"`
	Items         *Schema              `json:"items,omitempty"`
	OneOf         SchemaRefs           `json:"oneOf,omitempty"`
	AllOf         SchemaRefs           `json:"allOf,omitempty"`
	AnyOf         SchemaRefs           `json:"anyOf,omitempty"`
	Not           *SchemaRef           `json:"not,omitempty"`
	Discriminator *Discriminator       `json:"discriminator,omitempty"`
	Example       any                  `json:"example,omitempty"`
	Examples      []any                `json:"examples,omitempty"`
}

// Discriminator tells a document consumer which property value selects among
// the members of a oneOf/anyOf composition. Mapping is nil when no explicit
// value-to-pointer pairs were declared, never an empty map.
type Discriminator struct {
	PropertyName string              `json:"propertyName"`
	Mapping      *OrderedMap[string] `json:"mapping,omitempty"`
}
