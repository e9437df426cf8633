package js

// ArrayLiteral is an array literal such as [1,2,3].
type ArrayLiteral struct {
	expression
	Elements []Expression
}

// NewArray returns an array literal of the coerced values.
func NewArray(values ...any) (*ArrayLiteral, error) {
	elements, err := coerceAll(values)
	if err != nil {
		return nil, err
	}
	return &ArrayLiteral{Elements: elements}, nil
}

// Array returns an array literal of the coerced values. It panics if a value can not be
// coerced to an expression.
func Array(values ...any) *ArrayLiteral {
	arr, err := NewArray(values...)
	if err != nil {
		panic(err)
	}
	return arr
}

// WithElement appends a coerced value and returns the array.
func (a *ArrayLiteral) WithElement(value any) *ArrayLiteral {
	a.Elements = append(a.Elements, MustCoerce(value))
	return a
}

func (a *ArrayLiteral) AppendScript(w *Writer) error {
	w.WriteString("[")
	for i, e := range a.Elements {
		if i > 0 {
			w.WriteString(",")
		}
		if err := w.ListItem(e); err != nil {
			return err
		}
	}
	w.WriteString("]")
	return nil
}
