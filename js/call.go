package js

import (
	"fmt"
	"strings"
)

var callPrecedence = Precedence{Level: LevelCall, Associativity: LeftToRight}

// Call is the invocation of a function with a list of arguments.
type Call struct {
	expression
	Callee    Expression
	Arguments []Expression
}

// NewCall returns callee(args...) with the callee and arguments coerced.
func NewCall(callee any, args ...any) (*Call, error) {
	fn, err := Coerce(callee)
	if err != nil {
		return nil, err
	}
	arguments, err := coerceAll(args)
	if err != nil {
		return nil, err
	}
	return &Call{Callee: fn, Arguments: arguments}, nil
}

// Invoke returns callee(args...). It panics if a value can not be coerced to an expression.
func Invoke(callee any, args ...any) *Call {
	c, err := NewCall(callee, args...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Call) Precedence() Precedence {
	return callPrecedence
}

func (c *Call) AppendScript(w *Writer) error {
	if isNil(c.Callee) {
		return fmt.Errorf("%w: call has no callee", ErrInvalidOperation)
	}

	var err error
	if _, ok := c.Callee.(*Function); ok {
		// A function expression at the start of a statement reads as a declaration.
		err = w.Group(c.Callee)
	} else {
		err = w.Operand(callPrecedence, Left, c.Callee)
	}
	if err != nil {
		return err
	}
	return appendArguments(w, c.Arguments)
}

// NewExpression is the construction of an object: new Constructor(args...).
type NewExpression struct {
	expression
	Constructor Expression
	Arguments   []Expression
}

// New returns new ctor(args...). It panics if a value can not be coerced to an expression.
func New(ctor any, args ...any) *NewExpression {
	arguments, err := coerceAll(args)
	if err != nil {
		panic(err)
	}
	return &NewExpression{Constructor: MustCoerce(ctor), Arguments: arguments}
}

func (n *NewExpression) Precedence() Precedence {
	return callPrecedence
}

func (n *NewExpression) AppendScript(w *Writer) error {
	if isNil(n.Constructor) {
		return fmt.Errorf("%w: new has no constructor", ErrInvalidOperation)
	}

	w.WriteString("new ")
	var err error
	if containsCall(n.Constructor) {
		// The first argument list after new belongs to the constructor.
		err = w.Group(n.Constructor)
	} else {
		err = w.Operand(callPrecedence, Left, n.Constructor)
	}
	if err != nil {
		return err
	}
	return appendArguments(w, n.Arguments)
}

func containsCall(e Expression) bool {
	switch e := e.(type) {
	case *Call:
		return true
	case *Member:
		return containsCall(e.Object)
	case *IndexExpression:
		return containsCall(e.Object)
	}
	return false
}

func appendArguments(w *Writer, args []Expression) error {
	w.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			w.WriteString(",")
		}
		if err := w.ListItem(arg); err != nil {
			return err
		}
	}
	w.WriteString(")")
	return nil
}

// Member is the access of a named property: Object.Name.
type Member struct {
	expression
	Object Expression
	Name   *Identifier
}

// Dot returns obj.name. Reserved words are valid property names. It panics if name is not a
// valid IdentifierName or obj can not be coerced to an expression.
func Dot(obj any, name string) *Member {
	id, err := NewIdentifierName(name)
	if err != nil {
		panic(err)
	}
	return &Member{Object: MustCoerce(obj), Name: id}
}

func (m *Member) Precedence() Precedence {
	return callPrecedence
}

func (m *Member) AppendScript(w *Writer) error {
	switch {
	case isNil(m.Object):
		return fmt.Errorf("%w: member access has no object", ErrInvalidOperation)
	case m.Name == nil:
		return fmt.Errorf("%w: member access has no name", ErrInvalidOperation)
	}

	var err error
	if n, ok := m.Object.(*Number); ok && isIntegerText(FormatNumber(n.Value)) {
		// 1.toString would read as a malformed number.
		err = w.Group(n)
	} else {
		err = w.Operand(callPrecedence, Left, m.Object)
	}
	if err != nil {
		return err
	}

	w.WriteString(".")
	return w.PropertyName(m.Name)
}

func isIntegerText(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// IndexExpression is the access of a computed property: Object[Index].
type IndexExpression struct {
	expression
	Object Expression
	Index  Expression
}

// Index returns obj[index]. It panics if a value can not be coerced to an expression.
func Index(obj, index any) *IndexExpression {
	return &IndexExpression{Object: MustCoerce(obj), Index: MustCoerce(index)}
}

func (ix *IndexExpression) Precedence() Precedence {
	return callPrecedence
}

func (ix *IndexExpression) AppendScript(w *Writer) error {
	switch {
	case isNil(ix.Object):
		return fmt.Errorf("%w: index access has no object", ErrInvalidOperation)
	case isNil(ix.Index):
		return fmt.Errorf("%w: index access has no index", ErrInvalidOperation)
	}

	if err := w.Operand(callPrecedence, Left, ix.Object); err != nil {
		return err
	}
	w.WriteString("[")
	if err := w.Expression(ix.Index); err != nil {
		return err
	}
	w.WriteString("]")
	return nil
}

// Function is a function expression: function name(params){body}.
type Function struct {
	expression
	Name       *Identifier
	Parameters []*Identifier
	Body       []Node
}

// Func returns an anonymous function expression with the given parameter names. It panics if a
// parameter name is not a valid identifier.
func Func(params ...string) *Function {
	fn := &Function{Parameters: make([]*Identifier, 0, len(params))}
	for _, p := range params {
		fn.Parameters = append(fn.Parameters, Id(p))
	}
	return fn
}

// WithName names the function and returns it. It panics if name is not a valid identifier.
func (fn *Function) WithName(name string) *Function {
	fn.Name = Id(name)
	return fn
}

// WithBody appends statements to the body of the function and returns it.
func (fn *Function) WithBody(stmts ...Node) *Function {
	fn.Body = append(fn.Body, stmts...)
	return fn
}

func (fn *Function) AppendScript(w *Writer) error {
	w.WriteString("function")
	if fn.Name != nil {
		w.WriteString(" ")
		if err := fn.Name.AppendScript(w); err != nil {
			return err
		}
	}

	w.WriteString("(")
	for i, p := range fn.Parameters {
		if p == nil {
			return fmt.Errorf("%w: function parameter %d is nil", ErrInvalidOperation, i)
		}
		if i > 0 {
			w.WriteString(",")
		}
		if err := w.Expression(p); err != nil {
			return err
		}
	}
	w.WriteString("){")
	if err := w.Statements(fn.Body); err != nil {
		return err
	}
	w.WriteString("}")
	return nil
}

func coerceAll(values []any) ([]Expression, error) {
	exprs := make([]Expression, 0, len(values))
	for _, v := range values {
		e, err := Coerce(v)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}
