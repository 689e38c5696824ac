// Package openapi is the document embedding surface: the non-recursive
// value structs a finished oasbuild.Schema tree is mounted into before
// serialization. Everything here is direct field assignment; the recursive
// machinery lives in the root package.
package openapi

import (
	oas "github.com/reoring/oasbuild"
)

// Document is a minimal OpenAPI 3.1 document root.
type Document struct {
	OpenAPI    string      `json:"openapi" yaml:"openapi"`
	Info       *Info       `json:"info,omitempty" yaml:"info,omitempty"`
	Servers    []*Server   `json:"servers,omitempty" yaml:"servers,omitempty"`
	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`
}

// Info carries the document metadata block.
type Info struct {
	Title       string   `json:"title" yaml:"title"`
	Version     string   `json:"version" yaml:"version"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Contact     *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License     *License `json:"license,omitempty" yaml:"license,omitempty"`
}

// Contact identifies the document owner.
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License names the document license.
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Server describes one server entry.
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Components holds the named schemas reference pointers resolve against.
// Registration order is preserved on the wire.
type Components struct {
	Schemas *oas.OrderedMap[*oas.Schema] `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}
