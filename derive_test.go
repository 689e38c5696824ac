package oasbuild_test

import (
	"errors"
	"reflect"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	oas "github.com/reoring/oasbuild"
)

// normalize marshals v to JSON and unmarshals back into any so structures
// can be compared without caring about concrete model types.
func normalize(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("normalize marshal err: %v", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("normalize unmarshal err: %v", err)
	}
	return out
}

type Account struct {
	ID     string `json:"id"`
	Age    *int   `json:"age"`
	Active bool   `json:"active"`
}

func TestDerive_FlatObject(t *testing.T) {
	s, err := oas.Derive[Account]()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := normalize(t, s)
	want := normalize(t, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":     map[string]any{"type": "string"},
			"age":    map[string]any{"type": "integer"},
			"active": map[string]any{"type": "boolean"},
		},
		"required": []any{"id", "active"},
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("derived schema mismatch (-want +got):\n%s", diff)
	}
}

func TestDerive_PropertyOrderFollowsDeclaration(t *testing.T) {
	s, err := oas.Derive[Account]()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	want := `{"type":"object","properties":{"id":{"type":"string"},"age":{"type":"integer"},"active":{"type":"boolean"}},"required":["id","active"]}`
	if string(data) != want {
		t.Fatalf("output mismatch:\n got=%s\nwant=%s", data, want)
	}
}

type base struct {
	Inherited string `json:"inherited"`
}

type withEmbedded struct {
	base
	Own    string `json:"own"`
	secret string //nolint:unused
}

func TestDerive_SkipsEmbeddedAndUnexported(t *testing.T) {
	s, err := oas.DeriveType(reflect.TypeOf(withEmbedded{}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := s.Properties.Get("inherited"); ok {
		t.Fatalf("embedded field leaked into properties")
	}
	if _, ok := s.Properties.Get("own"); !ok {
		t.Fatalf("declared field missing")
	}
	if _, ok := s.Properties.Get("secret"); ok {
		t.Fatalf("unexported field leaked into properties")
	}
}

type kindTable struct {
	S  string         `json:"s"`
	I  int            `json:"i"`
	U  uint32         `json:"u"`
	F  float64        `json:"f"`
	B  bool           `json:"b"`
	L  []string       `json:"l"`
	A  [3]int         `json:"a"`
	M  map[string]int `json:"m"`
	N  Account        `json:"n"`
	IF any            `json:"if"`
}

func TestDerive_ClassificationTable(t *testing.T) {
	s, err := oas.Derive[kindTable]()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]string{
		"s": "string", "i": "integer", "u": "integer", "f": "number",
		"b": "boolean", "l": "array", "a": "array",
		"m": "object", "n": "object", "if": "object",
	}
	for name, wt := range want {
		p, ok := s.Properties.Get(name)
		if !ok {
			t.Fatalf("property %q missing", name)
		}
		if p.Type != wt {
			t.Fatalf("property %q: got type %q want %q", name, p.Type, wt)
		}
	}
	// depth-1: nested struct must stay a bare object
	n, _ := s.Properties.Get("n")
	if n.Properties.Len() != 0 {
		t.Fatalf("nested struct was recursed into: %#v", n)
	}
}

type tagged struct {
	Name    string `json:"name" desc:"display name"`
	Skipped string `json:"-"`
	Renamed string `json:"nick,omitempty"`
	Plain   string
}

func (tagged) SchemaDescription() string { return "a tagged thing" }

func TestDerive_TagsAndDocumented(t *testing.T) {
	s, err := oas.Derive[tagged]()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Description != "a tagged thing" {
		t.Fatalf("type description missing: %q", s.Description)
	}
	p, _ := s.Properties.Get("name")
	if p == nil || p.Description != "display name" {
		t.Fatalf("desc tag not applied: %#v", p)
	}
	if _, ok := s.Properties.Get("Skipped"); ok {
		t.Fatalf("json \"-\" field not skipped")
	}
	if _, ok := s.Properties.Get("nick"); !ok {
		t.Fatalf("json tag rename not applied")
	}
	if _, ok := s.Properties.Get("Plain"); !ok {
		t.Fatalf("untagged field should use its Go name")
	}
}

func TestDerive_SelfReferenceIsSafe(t *testing.T) {
	type node struct {
		Next *node `json:"next"`
	}
	s, err := oas.DeriveType(reflect.TypeOf(node{}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	p, _ := s.Properties.Get("next")
	if p == nil || p.Type != oas.TypeObject {
		t.Fatalf("self-referential field should be a bare object: %#v", p)
	}
	if len(s.Required) != 0 {
		t.Fatalf("pointer field must be optional, required=%v", s.Required)
	}
}

func TestDeriveType_Errors(t *testing.T) {
	if _, err := oas.DeriveType(reflect.TypeOf(struct{ X int }{})); !errors.Is(err, oas.ErrUnnamedType) {
		t.Fatalf("expected ErrUnnamedType, got: %v", err)
	}
	if _, err := oas.DeriveType(nil); !errors.Is(err, oas.ErrUnnamedType) {
		t.Fatalf("expected ErrUnnamedType for nil type, got: %v", err)
	}
	if _, err := oas.DeriveType(reflect.TypeOf(42)); err == nil {
		t.Fatalf("expected error for non-struct type")
	}
}
