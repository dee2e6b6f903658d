package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized returns an error naming the first exported field of s
// that still holds its zero value. Fields tagged `wire:"-"` are skipped.
func IsStructInitialized(s any) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.New("struct is nil")
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return errors.Errorf("expected a struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := range v.NumField() {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("wire") == "-" {
			continue
		}

		if v.Field(i).IsZero() {
			return errors.Errorf("struct field %s is not initialized", field.Name)
		}
	}

	return nil
}
