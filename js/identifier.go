package js

import (
	"fmt"
	"unicode"
)

var reservedWords = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "implements": true,
	"import": true, "in": true, "instanceof": true, "interface": true, "let": true,
	"new": true, "null": true, "package": true, "private": true, "protected": true,
	"public": true, "return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true, "typeof": true, "var": true,
	"void": true, "while": true, "with": true, "yield": true,
}

// IsReservedWord reports whether name is a reserved word of the language.
func IsReservedWord(name string) bool {
	return reservedWords[name]
}

// IsValidIdentifierName reports whether name satisfies the identifier grammar, ignoring
// reserved words: letters, digits, "_" and "$", not starting with a digit.
func IsValidIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// IsValidIdentifier reports whether name can be used as an identifier anywhere.
func IsValidIdentifier(name string) bool {
	return IsValidIdentifierName(name) && !IsReservedWord(name)
}

// Identifier is a reference to a variable, function or property by name.
type Identifier struct {
	expression
	name          string
	allowReserved bool
}

// NewIdentifier returns an identifier for name. Names that are not valid identifiers, reserved
// words included, return ErrInvalidValue.
func NewIdentifier(name string) (*Identifier, error) {
	id := &Identifier{}
	if err := id.SetName(name); err != nil {
		return nil, err
	}
	return id, nil
}

// NewIdentifierName returns an identifier that may also be a reserved word. Such identifiers
// render as property names and object literal keys; anywhere else a reserved word fails to
// render unless Options.AllowReservedWords is set.
func NewIdentifierName(name string) (*Identifier, error) {
	id := &Identifier{allowReserved: true}
	if err := id.SetName(name); err != nil {
		return nil, err
	}
	return id, nil
}

// Id returns an identifier for name and panics if the name is not a valid identifier.
func Id(name string) *Identifier {
	id, err := NewIdentifier(name)
	if err != nil {
		panic(err)
	}
	return id
}

// Name returns the name of the identifier.
func (id *Identifier) Name() string {
	return id.name
}

// SetName replaces the name of the identifier. The name is checked the same way as when the
// identifier was created.
func (id *Identifier) SetName(name string) error {
	if !IsValidIdentifierName(name) {
		return fmt.Errorf("%w: %q is not a valid identifier", ErrInvalidValue, name)
	}
	if !id.allowReserved && IsReservedWord(name) {
		return fmt.Errorf("%w: %q is a reserved word", ErrInvalidValue, name)
	}
	id.name = name
	return nil
}

func (id *Identifier) AppendScript(w *Writer) error {
	if id.name == "" {
		return fmt.Errorf("%w: identifier has no name", ErrInvalidOperation)
	}
	if IsReservedWord(id.name) && !w.propertyName && !w.opts.AllowReservedWords {
		return fmt.Errorf("%w: reserved word %q used as an identifier", ErrInvalidValue, id.name)
	}
	w.WriteString(id.name)
	return nil
}

// propertyKey returns the expression used for a native object key: an IdentifierName when the
// key is a valid one, a coerced expression otherwise. Only identifiers, strings, numbers and
// booleans are valid keys.
func propertyKey(key any) (Expression, error) {
	if s, ok := key.(string); ok && IsValidIdentifierName(s) {
		return NewIdentifierName(s)
	}

	k, err := Coerce(key)
	if err != nil {
		return nil, err
	}
	switch k.(type) {
	case *Identifier, *String, *Number, *Boolean:
		return k, nil
	}
	return nil, fmt.Errorf("%w: %T can not be an object key", ErrInvalidArgument, key)
}
