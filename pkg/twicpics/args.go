package twicpics

import (
	"fmt"
	"reflect"
	"strconv"
)

// value is an optional scalar already rendered to text.
// The zero value is absent, which differs from a present empty string.
type value struct {
	text string
	set  bool
}

func present(text string) value { return value{text: text, set: true} }

func (v value) absent() bool { return !v.set }

// Params is a keyed argument: each parameter is looked up by its name
// ("width", "height", "x", "y", "type", "quality").
type Params map[string]any

// Record is a field-keyed argument. Field returns the value of the named
// field and whether the record has such a field.
type Record interface {
	Field(name string) (any, bool)
}

// argSource resolves a parameter either by name or by position.
type argSource interface {
	lookup(name string, pos int) (any, bool)
}

type positional []any

func (p positional) lookup(_ string, pos int) (any, bool) {
	if pos < len(p) {
		return p[pos], true
	}
	return nil, false
}

type mapping map[string]any

func (m mapping) lookup(name string, _ int) (any, bool) {
	v, ok := m[name]
	return v, ok
}

type fields struct{ Record }

func (f fields) lookup(name string, _ int) (any, bool) {
	if f.Record == nil {
		return nil, false
	}
	return f.Field(name)
}

// sourceOf picks the argument shape. Only a single argument can be keyed.
func sourceOf(args []any) argSource {
	if len(args) == 1 {
		switch first := args[0].(type) {
		case Params:
			return mapping(first)
		case map[string]any:
			return mapping(first)
		case Record:
			if isNil(first) {
				return fields{}
			}
			return fields{first}
		}
	}
	return positional(args)
}

// normalize resolves args into one value per name, in the order of names.
// Parameters that were not supplied are absent.
func normalize(method string, args []any, names ...string) ([]value, error) {
	if len(args) < 1 || len(args) > len(names) {
		return nil, arityError(method, 1, len(names))
	}

	src := sourceOf(args)
	values := make([]value, len(names))
	for i, name := range names {
		raw, ok := src.lookup(name, i)
		if !ok {
			continue
		}
		v, err := scalar(method, name, raw)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// scalar renders a raw argument as text. nil is absent.
func scalar(method, name string, raw any) (value, error) {
	switch v := raw.(type) {
	case nil:
		return value{}, nil
	case string:
		return present(v), nil
	case int:
		return present(strconv.Itoa(v)), nil
	case int8:
		return present(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return present(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return present(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return present(strconv.FormatInt(v, 10)), nil
	case uint:
		return present(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return present(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return present(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return present(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return present(strconv.FormatUint(v, 10)), nil
	case float32:
		return present(strconv.FormatFloat(float64(v), 'f', -1, 32)), nil
	case float64:
		return present(strconv.FormatFloat(v, 'f', -1, 64)), nil
	case fmt.Stringer:
		if isNil(v) {
			return value{}, nil
		}
		return present(v.String()), nil
	}
	return value{}, usageError("%s: unsupported %s value of type %T", method, name, raw)
}

// isNil reports whether v holds a nil pointer, slice, map or func.
// Such values are absent rather than rendered.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
