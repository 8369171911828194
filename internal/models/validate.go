package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// ValidationError reports a payload that does not match a record schema.
// Field is the path of the offending value in upstream key names, such as
// "alpha" or "hops[2].use".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// defaulter fills declared defaults after decoding.
type defaulter interface {
	applyDefaults()
}

var defaulterType = reflect.TypeFor[defaulter]()

// Parse decodes a single record and validates it against the schema of T.
func Parse[T any](data []byte) (*T, error) {
	var out T
	if err := decode(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseList decodes a JSON array of records, preserving response order.
func ParseList[T any](data []byte) ([]T, error) {
	var out []T
	if err := decode(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(data []byte, dst any) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ValidationError{Reason: "malformed JSON: " + err.Error()}
	}
	target := reflect.ValueOf(dst).Elem()
	schema, err := schemaFor(target.Type())
	if err != nil {
		return err
	}
	if err := schema.validate(raw); err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return vErr
		}
		return &ValidationError{Reason: err.Error()}
	}
	fill(target)
	return nil
}

// fill replaces absent collections with empty ones and runs defaulters.
func fill(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			fill(v.Elem())
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			fill(v.Index(i))
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			f := v.Field(i)
			if f.Kind() == reflect.Slice && f.IsNil() && f.CanSet() {
				f.Set(reflect.MakeSlice(f.Type(), 0, 0))
			}
			fill(f)
		}
		if v.CanAddr() && v.Addr().Type().Implements(defaulterType) {
			v.Addr().Interface().(defaulter).applyDefaults()
		}
	}
}
