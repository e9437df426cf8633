package js

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Marshaler is implemented by types that convert themselves into an expression, for values
// whose exported fields are not the properties they should render as.
type Marshaler interface {
	MarshalJS() (Expression, error)
}

var (
	expressionType    = reflect.TypeOf((*Expression)(nil)).Elem()
	propertyType      = reflect.TypeOf((*Property)(nil)).Elem()
	keyValueType      = reflect.TypeOf((*KeyValue)(nil)).Elem()
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// Coerce returns the expression that represents a native value. The categories below overlap,
// so they are tried in this order and the first match wins:
//
//  1. an Expression is returned as is
//  2. nil, including typed nil pointers, maps, slices and interfaces, is the null literal;
//     a Marshaler converts itself
//  3. strings are string literals, even when they look like numbers
//  4. a Node that is not an Expression fails with ErrInvalidOperation
//  5. maps are object literals, with keys in sorted order
//  6. slices and arrays go through ArrayOrObject
//  7. structs, and pointers to structs, are object literals of their exported fields unless
//     they implement fmt.Stringer or encoding.TextMarshaler
//  8. booleans are boolean literals
//  9. numbers, and values whose text parses as a number, are numeric literals
//  10. anything else is the string literal of its text
func Coerce(v any) (Expression, error) {
	if e, ok := v.(Expression); ok && !isNil(e) {
		return e, nil
	}
	if isNil(v) {
		return Null(), nil
	}
	if m, ok := v.(Marshaler); ok {
		e, err := m.MarshalJS()
		if err != nil {
			return nil, err
		}
		if isNil(e) {
			return Null(), nil
		}
		return e, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return Str(rv.String()), nil
	}
	if _, ok := v.(Node); ok {
		return nil, fmt.Errorf("%w: a statement cannot be used as an expression", ErrInvalidOperation)
	}

	switch rv.Kind() {
	case reflect.Map:
		return objectFromValue(rv)
	case reflect.Slice, reflect.Array:
		return arrayOrObject(rv)
	}
	if isRecord(rv) {
		return objectFromValue(rv)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Num(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Num(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Num(rv.Float()), nil
	}

	text := fmt.Sprint(v)
	if f, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		return Num(f), nil
	}
	return Str(text), nil
}

// MustCoerce is like Coerce but panics if v can not be coerced.
func MustCoerce(v any) Expression {
	e, err := Coerce(v)
	if err != nil {
		panic(err)
	}
	return e
}

// ArrayOrObject converts a slice or array. When it is not empty and every element is a
// Property or a KeyValue the result is an object literal of those entries, otherwise it is an
// array literal of the coerced elements.
func ArrayOrObject(v any) (Expression, error) {
	if isNil(v) {
		return Null(), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T is not a slice or an array", ErrInvalidArgument, v)
	}
	return arrayOrObject(rv)
}

func arrayOrObject(rv reflect.Value) (Expression, error) {
	if isEntryList(rv) {
		return objectFromValue(rv)
	}

	arr := &ArrayLiteral{Elements: make([]Expression, 0, rv.Len())}
	for i := 0; i < rv.Len(); i++ {
		e, err := Coerce(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, e)
	}
	return arr, nil
}

func objectFromValue(rv reflect.Value) (*ObjectLiteral, error) {
	props, err := propertiesOf(rv)
	if err != nil {
		return nil, err
	}
	return &ObjectLiteral{properties: props}, nil
}

// nativeProperties returns the object literal entries of a map, a struct, or a list of
// Property or KeyValue entries.
func nativeProperties(v any) ([]Property, error) {
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Map, isEntryList(rv), isRecord(rv):
		return propertiesOf(rv)
	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		if rv.Len() == 0 {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("%w: %T has no properties", ErrInvalidArgument, v)
}

func propertiesOf(rv reflect.Value) ([]Property, error) {
	switch rv.Kind() {
	case reflect.Map:
		return mapProperties(rv)
	case reflect.Slice, reflect.Array:
		return entryProperties(rv)
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	var props []Property
	err := appendFieldProperties(&props, rv)
	return props, err
}

func mapProperties(rv reflect.Value) ([]Property, error) {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareKeys)

	props := make([]Property, 0, len(keys))
	for _, key := range keys {
		k, err := propertyKey(key.Interface())
		if err != nil {
			return nil, err
		}
		v, err := Coerce(rv.MapIndex(key).Interface())
		if err != nil {
			return nil, err
		}
		props = append(props, Property{Key: k, Value: v})
	}
	return props, nil
}

// compareKeys orders numeric keys by value and every other key by its text.
func compareKeys(a, b reflect.Value) int {
	af, aok := numericValue(a)
	bf, bok := numericValue(b)
	switch {
	case aok && bok:
		return cmp.Compare(af, bf)
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}

func numericValue(rv reflect.Value) (float64, bool) {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func entryProperties(rv reflect.Value) ([]Property, error) {
	props := make([]Property, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if !elem.IsValid() {
			return nil, fmt.Errorf("%w: entry %d is nil", ErrInvalidArgument, i)
		}

		switch entry := elem.Interface().(type) {
		case Property:
			props = append(props, entry)
		case KeyValue:
			k, err := propertyKey(entry.Key)
			if err != nil {
				return nil, err
			}
			v, err := Coerce(entry.Value)
			if err != nil {
				return nil, err
			}
			props = append(props, Property{Key: k, Value: v})
		}
	}
	return props, nil
}

func appendFieldProperties(props *[]Property, rv reflect.Value) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, omitEmpty, skip := fieldName(field)
		if skip || !field.IsExported() {
			continue
		}

		fv := rv.Field(i)
		if field.Anonymous && field.Tag.Get("js") == "" {
			embedded := fv
			if embedded.Kind() == reflect.Pointer {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				if err := appendFieldProperties(props, embedded); err != nil {
					return err
				}
				continue
			}
		}
		if omitEmpty && fv.IsZero() {
			continue
		}

		k, err := propertyKey(name)
		if err != nil {
			return err
		}
		v, err := Coerce(fv.Interface())
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		*props = append(*props, Property{Key: k, Value: v})
	}
	return nil
}

// fieldName reads the js struct tag: `js:"name,omitempty"` or `js:"-"`.
func fieldName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("js")
	if tag == "-" {
		return "", false, true
	}

	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, opts == "omitempty", false
}

// isEntryList reports whether rv is a non-empty list whose elements are all Property or
// KeyValue entries.
func isEntryList(rv reflect.Value) bool {
	if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() == 0 {
		return false
	}

	switch elemType(rv.Type().Elem()) {
	case propertyType, keyValueType:
		return true
	}
	if rv.Type().Elem().Kind() != reflect.Interface {
		return false
	}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		if elem.IsNil() {
			return false
		}
		switch elemType(elem.Elem().Type()) {
		case propertyType, keyValueType:
		default:
			return false
		}
	}
	return true
}

func elemType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// isRecord reports whether rv holds plain data that converts into an object literal.
func isRecord(rv reflect.Value) bool {
	t := rv.Type()
	if t.Implements(stringerType) || t.Implements(textMarshalerType) || t.Implements(expressionType) {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
