package openapi

import (
	"reflect"

	oas "github.com/reoring/oasbuild"
	"github.com/reoring/oasbuild/dsl"
)

// DocumentBuilder assembles a Document. Like every builder in this module
// it is a single-use accumulator; Build returns the first error recorded by
// a reflection entry point and nothing else fails.
type DocumentBuilder struct {
	doc Document
	err error
}

// NewDocument starts a document for the given OpenAPI version string.
func NewDocument(version string) *DocumentBuilder {
	return &DocumentBuilder{doc: Document{OpenAPI: version}}
}

// Info fills the info block.
func (b *DocumentBuilder) Info(fn func(*InfoBuilder)) *DocumentBuilder {
	ib := &InfoBuilder{}
	if fn != nil {
		fn(ib)
	}
	b.doc.Info = &ib.info
	return b
}

// Server appends a server entry.
func (b *DocumentBuilder) Server(url, description string) *DocumentBuilder {
	b.doc.Servers = append(b.doc.Servers, &Server{URL: url, Description: description})
	return b
}

// Components fills the components block.
func (b *DocumentBuilder) Components(fn func(*ComponentsBuilder)) *DocumentBuilder {
	cb := NewComponents()
	if fn != nil {
		fn(cb)
	}
	c, err := cb.Build()
	if err != nil && b.err == nil {
		b.err = err
	}
	b.doc.Components = c
	return b
}

// Build returns the document, or the first derivation error encountered.
func (b *DocumentBuilder) Build() (*Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &b.doc, nil
}

// MustBuild is like Build but panics on error.
func (b *DocumentBuilder) MustBuild() *Document {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// InfoBuilder fills an Info block by direct assignment.
type InfoBuilder struct {
	info Info
}

// Title sets the title.
func (b *InfoBuilder) Title(t string) *InfoBuilder {
	b.info.Title = t
	return b
}

// Version sets the document version.
func (b *InfoBuilder) Version(v string) *InfoBuilder {
	b.info.Version = v
	return b
}

// Description sets the description.
func (b *InfoBuilder) Description(d string) *InfoBuilder {
	b.info.Description = d
	return b
}

// Contact sets the contact block.
func (b *InfoBuilder) Contact(name, url, email string) *InfoBuilder {
	b.info.Contact = &Contact{Name: name, URL: url, Email: email}
	return b
}

// License sets the license block.
func (b *InfoBuilder) License(name, url string) *InfoBuilder {
	b.info.License = &License{Name: name, URL: url}
	return b
}

// ComponentsBuilder registers named schemas in declaration order. SchemaOf
// is the reflection entry point: it derives a flat object schema from a Go
// struct type and registers it under the type's simple name.
type ComponentsBuilder struct {
	schemas *oas.OrderedMap[*oas.Schema]
	err     error
}

// NewComponents starts an empty components builder.
func NewComponents() *ComponentsBuilder {
	return &ComponentsBuilder{schemas: oas.NewOrderedMap[*oas.Schema]()}
}

// Schema registers an already-built schema under name.
func (b *ComponentsBuilder) Schema(name string, s *oas.Schema) *ComponentsBuilder {
	b.schemas.Set(name, s)
	return b
}

// SchemaFunc registers a schema built by fn under name.
func (b *ComponentsBuilder) SchemaFunc(name string, fn func(*dsl.SchemaBuilder)) *ComponentsBuilder {
	sb := dsl.Schema()
	if fn != nil {
		fn(sb)
	}
	return b.Schema(name, sb.Build())
}

// SchemaOf derives a schema from v's struct type (oasbuild.DeriveType) and
// registers it under the type's simple name. Derivation errors are sticky:
// the first one surfaces from Build and later registrations still apply.
func (b *ComponentsBuilder) SchemaOf(v any) *ComponentsBuilder {
	t := reflect.TypeOf(v)
	s, err := oas.DeriveType(t)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	b.schemas.Set(t.Name(), s)
	return b
}

// Build returns the components, or the first derivation error.
func (b *ComponentsBuilder) Build() (*Components, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.schemas.Len() == 0 {
		return &Components{}, nil
	}
	return &Components{Schemas: b.schemas}, nil
}

// MustBuild is like Build but panics on error.
func (b *ComponentsBuilder) MustBuild() *Components {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
