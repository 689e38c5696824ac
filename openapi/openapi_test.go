package openapi_test

import (
	"errors"
	"strings"
	"testing"

	oas "github.com/reoring/oasbuild"
	"github.com/reoring/oasbuild/codec"
	"github.com/reoring/oasbuild/dsl"
	"github.com/reoring/oasbuild/openapi"
	"gopkg.in/yaml.v3"
)

type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email" desc:"login address"`
	Age   *int    `json:"age"`
	Score float64 `json:"score"`
}

func TestComponentsBuilder_SchemaOf(t *testing.T) {
	c, err := openapi.NewComponents().
		SchemaOf(User{}).
		SchemaFunc("Pet", func(b *dsl.SchemaBuilder) {
			b.OneOf(func(ob *dsl.OneOfBuilder) {
				ob.Schema("Dog")
				ob.Schema("Cat")
			})
		}).
		Build()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	keys := c.Schemas.Keys()
	if len(keys) != 2 || keys[0] != "User" || keys[1] != "Pet" {
		t.Fatalf("registration order lost: %v", keys)
	}
	u, _ := c.Schemas.Get("User")
	if u.Type != oas.TypeObject {
		t.Fatalf("derived schema missing: %#v", u)
	}
	if p, _ := u.Properties.Get("email"); p == nil || p.Description != "login address" {
		t.Fatalf("desc tag lost: %#v", p)
	}
	if len(u.Required) != 3 {
		t.Fatalf("pointer field must stay optional, required=%v", u.Required)
	}
}

func TestComponentsBuilder_DerivationErrorIsSticky(t *testing.T) {
	_, err := openapi.NewComponents().
		SchemaOf(struct{ X int }{}).
		SchemaOf(User{}).
		Build()
	if !errors.Is(err, oas.ErrUnnamedType) {
		t.Fatalf("expected ErrUnnamedType, got: %v", err)
	}
}

func TestDocumentBuilder_EncodesBothFormats(t *testing.T) {
	doc, err := openapi.NewDocument("3.1.0").
		Info(func(b *openapi.InfoBuilder) {
			b.Title("Pet Store").Version("1.2.3").License("MIT", "")
		}).
		Server("https://api.example.com", "production").
		Components(func(b *openapi.ComponentsBuilder) {
			b.SchemaOf(User{})
		}).
		Build()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	jsonOut, err := codec.EncodeJSON(doc)
	if err != nil {
		t.Fatalf("json encode err: %v", err)
	}
	for _, frag := range []string{`"openapi":"3.1.0"`, `"title":"Pet Store"`, `"User":{"type":"object"`} {
		if !strings.Contains(string(jsonOut), frag) {
			t.Fatalf("json output missing %s:\n%s", frag, jsonOut)
		}
	}

	yamlOut, err := codec.EncodeYAML(doc)
	if err != nil {
		t.Fatalf("yaml encode err: %v", err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(yamlOut, &got); err != nil {
		t.Fatalf("reparse err: %v\nyaml:\n%s", err, yamlOut)
	}
	if got["openapi"] != "3.1.0" {
		t.Fatalf("openapi version lost: %#v", got)
	}
	comps, _ := got["components"].(map[string]any)
	schemas, _ := comps["schemas"].(map[string]any)
	user, _ := schemas["User"].(map[string]any)
	if user == nil || user["type"] != "object" {
		t.Fatalf("components.schemas.User missing:\n%s", yamlOut)
	}
}

func TestDocumentBuilder_PropagatesComponentError(t *testing.T) {
	_, err := openapi.NewDocument("3.1.0").
		Components(func(b *openapi.ComponentsBuilder) {
			b.SchemaOf(struct{}{})
		}).
		Build()
	if !errors.Is(err, oas.ErrUnnamedType) {
		t.Fatalf("expected ErrUnnamedType, got: %v", err)
	}
}
