package oasbuild

import (
	"fmt"
	"reflect"
	"strings"
)

// Documented lets a struct type attach a description to its derived object
// schema, the way a doc annotation on the type declaration would.
type Documented interface {
	SchemaDescription() string
}

// Derive produces a flat object schema for the struct type T.
// See DeriveType for the exact rules.
func Derive[T any]() (*Schema, error) {
	return DeriveType(reflect.TypeOf((*T)(nil)).Elem())
}

// DeriveType maps a named struct type to a Schema{type: object} by iterating
// its directly declared fields in declaration order. Classification is a
// fixed table over reflect kinds:
//
//	string kinds            -> string
//	integral kinds          -> integer
//	floating kinds          -> number
//	bool                    -> boolean
//	slices and arrays       -> array
//	everything else         -> object
//
// Nested structs map to a bare {type: object} with no recursion into their
// fields. The depth-1 shape is deliberate: it keeps self-referential types
// safe without a cycle guard and keeps output stable for existing callers.
// A field is required unless declared as a pointer; pointers unwrap for
// classification. Embedded and unexported fields are skipped.
//
// The external property name follows the json struct tag, falling back to
// the field name; "-" disables the field. A desc tag becomes the property
// description, and a type implementing Documented describes the object.
func DeriveType(t reflect.Type) (*Schema, error) {
	if t == nil {
		return nil, fmt.Errorf("oasbuild: derive nil type: %w", ErrUnnamedType)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return nil, fmt.Errorf("oasbuild: derive %s: %w", t, ErrUnnamedType)
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("oasbuild: derive %s: not a struct type", t)
	}

	s := &Schema{Type: TypeObject, Properties: NewOrderedMap[*Schema]()}
	if d, ok := reflect.New(t).Interface().(Documented); ok {
		s.Description = d.SchemaDescription()
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		name := fieldKey(f)
		if name == "-" {
			continue
		}
		ft := f.Type
		nullable := ft.Kind() == reflect.Pointer
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		prop := &Schema{Type: classifyKind(ft.Kind())}
		if desc := f.Tag.Get("desc"); desc != "" {
			prop.Description = desc
		}
		s.Properties.Set(name, prop)
		if !nullable {
			s.Required = append(s.Required, name)
		}
	}
	return s, nil
}

// fieldKey resolves a struct field's external property name.
// Priority: json tag name > field name; "-" disables the field.
func fieldKey(sf reflect.StructField) string {
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			jt = jt[:i]
		}
		if jt != "" {
			return jt
		}
	}
	return sf.Name
}

func classifyKind(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return TypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger
	case reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Bool:
		return TypeBoolean
	case reflect.Slice, reflect.Array:
		return TypeArray
	default:
		return TypeObject
	}
}
