package debugui

import (
	"reflect"
	"sync"
)

// editorField is one exported field as laid out by the component editor.
type editorField struct {
	name    string
	index   int
	pointer bool
	// nested fields open their own tree node.
	nested bool
}

var editorFields sync.Map // reflect.Type -> []editorField

// fieldsOf lists the exported fields of struct type t. Non-struct types have none.
func fieldsOf(t reflect.Type) []editorField {
	if cached, ok := editorFields.Load(t); ok {
		return cached.([]editorField)
	}

	var fields []editorField
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			elem := field.Type
			pointer := elem.Kind() == reflect.Pointer
			if pointer {
				elem = elem.Elem()
			}
			fields = append(fields, editorField{
				name:    field.Name,
				index:   i,
				pointer: pointer,
				nested:  elem.Kind() == reflect.Struct || elem.Kind() == reflect.Array,
			})
		}
	}

	actual, _ := editorFields.LoadOrStore(t, fields)
	return actual.([]editorField)
}
