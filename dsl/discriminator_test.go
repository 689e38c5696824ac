package dsl_test

import (
	"testing"

	"github.com/reoring/oasbuild/dsl"
)

func TestDiscriminatorBuilder_EmptyMappingStaysNil(t *testing.T) {
	d := dsl.Discriminator("petType").Build()
	if d.PropertyName != "petType" {
		t.Fatalf("property name mismatch: %q", d.PropertyName)
	}
	if d.Mapping != nil {
		t.Fatalf("expected nil mapping, got %v", d.Mapping.Keys())
	}
}

func TestDiscriminatorBuilder_MappingOrderAndPrefixing(t *testing.T) {
	d := dsl.Discriminator("kind").
		Mapping("dog", "Dog").
		MappingOf("cat", Cat{}).
		Mapping("other", "#/defs/Other").
		Build()

	keys := d.Mapping.Keys()
	if len(keys) != 3 || keys[0] != "dog" || keys[1] != "cat" || keys[2] != "other" {
		t.Fatalf("mapping order lost: %v", keys)
	}
	if v, _ := d.Mapping.Get("dog"); v != "#/components/schemas/Dog" {
		t.Fatalf("bare name not prefixed: %q", v)
	}
	if v, _ := d.Mapping.Get("cat"); v != "#/components/schemas/Cat" {
		t.Fatalf("type name not resolved: %q", v)
	}
	if v, _ := d.Mapping.Get("other"); v != "#/defs/Other" {
		t.Fatalf("absolute fragment modified: %q", v)
	}
}

func TestDiscriminatorBuilder_MappingOf_PanicsOnUnnamedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	dsl.Discriminator("kind").MappingOf("x", struct{}{})
}
