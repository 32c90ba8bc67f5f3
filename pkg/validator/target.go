package validator

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/vars"
)

// Source is a custom target that answers field lookups itself.
type Source interface {
	Lookup(name string) (any, bool)
}

// lookupField answers existence and value of a field for every supported
// target kind. Unsupported targets report the field as missing.
func lookupField(target any, name string) (bool, any) {
	switch t := target.(type) {
	case nil:
		return false, nil
	case *vars.Vars:
		if t == nil || !t.Has(name) {
			return false, nil
		}
		return true, t.Get(name)
	case *vars.List:
		i, err := strconv.Atoi(name)
		if err != nil {
			if t.Loose() {
				return true, t.Default()
			}
			return false, nil
		}
		if !t.Has(i) {
			return false, nil
		}
		return true, t.Get(i)
	case map[string]any:
		value, ok := t[name]
		return ok, value
	case map[string]string:
		value, ok := t[name]
		if !ok {
			return false, nil
		}
		return true, value
	case url.Values:
		return lookupMulti(t, name)
	case map[string][]string:
		return lookupMulti(t, name)
	case []any:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= len(t) {
			return false, nil
		}
		return true, t[i]
	case Source:
		value, ok := t.Lookup(name)
		if !ok {
			return false, nil
		}
		return true, value
	}
	return lookupReflect(reflect.ValueOf(target), name)
}

// lookupMulti unwraps single-valued form fields to their string value.
func lookupMulti(values map[string][]string, name string) (bool, any) {
	list, ok := values[name]
	if !ok {
		return false, nil
	}
	if len(list) == 1 {
		return true, list[0]
	}
	return true, list
}

func lookupReflect(rv reflect.Value, name string) (bool, any) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return lookupStructField(rv, name)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return false, nil
		}
		value := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !value.IsValid() {
			return false, nil
		}
		return true, value.Interface()
	}
	return false, nil
}

// lookupStructField matches exported fields by `form` tag, then `json` tag,
// then Go field name.
func lookupStructField(rv reflect.Value, name string) (bool, any) {
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if fieldName(field) == name {
			return true, rv.Field(i).Interface()
		}
	}
	return false, nil
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		value, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		tagName, _, _ := strings.Cut(value, ",")
		if tagName == "-" {
			return ""
		}
		if tagName != "" {
			return tagName
		}
	}
	return field.Name
}
