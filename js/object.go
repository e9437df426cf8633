package js

import (
	"fmt"
)

// Property is a single key:value entry of an object literal.
type Property struct {
	Key   Expression
	Value Expression
}

// KeyValue is a native key/value pair. A slice of KeyValue coerces to an object literal.
type KeyValue struct {
	Key   any
	Value any
}

// ObjectLiteral is an object literal such as {a:1,b:2}. Entries keep their insertion order and
// the same key may appear more than once, exactly as in literal source text.
type ObjectLiteral struct {
	expression
	properties []Property
}

// NewObjectLiteral returns an object literal with the given entries.
func NewObjectLiteral(props ...Property) *ObjectLiteral {
	return &ObjectLiteral{properties: append([]Property(nil), props...)}
}

// ObjectFrom returns an object literal built from a map, a struct, or a slice of Property or
// KeyValue entries.
func ObjectFrom(v any) (*ObjectLiteral, error) {
	o := NewObjectLiteral()
	if err := o.AddProperties(v); err != nil {
		return nil, err
	}
	return o, nil
}

// Properties returns the entries of the object literal.
func (o *ObjectLiteral) Properties() []Property {
	return o.properties
}

// SetProperties replaces all entries of the object literal.
func (o *ObjectLiteral) SetProperties(props []Property) {
	o.properties = append([]Property(nil), props...)
}

// Len returns the number of entries.
func (o *ObjectLiteral) Len() int {
	return len(o.properties)
}

// AddProperty appends an entry. A string key that is a valid IdentifierName becomes an
// identifier key, any other key and the value are coerced.
func (o *ObjectLiteral) AddProperty(key, value any) error {
	if o == nil {
		return fmt.Errorf("%w: object literal is nil", ErrInvalidArgument)
	}

	k, err := propertyKey(key)
	if err != nil {
		return err
	}
	v, err := Coerce(value)
	if err != nil {
		return err
	}

	o.properties = append(o.properties, Property{Key: k, Value: v})
	return nil
}

// AddProperties appends every entry of a map, a struct, or a slice of Property or KeyValue
// entries.
func (o *ObjectLiteral) AddProperties(v any) error {
	if o == nil {
		return fmt.Errorf("%w: object literal is nil", ErrInvalidArgument)
	}
	if isNil(v) {
		return fmt.Errorf("%w: properties are nil", ErrInvalidArgument)
	}

	if other, ok := v.(*ObjectLiteral); ok {
		o.properties = append(o.properties, other.properties...)
		return nil
	}

	props, err := nativeProperties(v)
	if err != nil {
		return err
	}
	o.properties = append(o.properties, props...)
	return nil
}

// WithProperty appends an entry and returns the object literal. It panics when the object is
// nil or the key or value can not be coerced.
func (o *ObjectLiteral) WithProperty(key, value any) *ObjectLiteral {
	if err := o.AddProperty(key, value); err != nil {
		panic(err)
	}
	return o
}

// WithProperties appends the entries of v and returns the object literal. It panics when the
// object is nil or v can not be converted into entries.
func (o *ObjectLiteral) WithProperties(v any) *ObjectLiteral {
	if err := o.AddProperties(v); err != nil {
		panic(err)
	}
	return o
}

func (o *ObjectLiteral) AppendScript(w *Writer) error {
	w.WriteString("{")
	for i, p := range o.properties {
		if i > 0 {
			w.WriteString(",")
		}
		if isNil(p.Key) {
			return fmt.Errorf("%w: object literal entry %d has no key", ErrInvalidOperation, i)
		}
		if err := w.PropertyName(p.Key); err != nil {
			return err
		}
		w.WriteString(":")
		if err := w.ListItem(p.Value); err != nil {
			return err
		}
	}
	w.WriteString("}")
	return nil
}
