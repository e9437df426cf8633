package js

import (
	"fmt"
	"strings"
)

// EmptyStatement is a statement that does nothing. It renders as a lone terminator.
type EmptyStatement struct{}

// Empty returns an empty statement.
func Empty() *EmptyStatement {
	return &EmptyStatement{}
}

func (*EmptyStatement) RequiresTerminator() bool {
	return true
}

func (*EmptyStatement) AppendScript(*Writer) error {
	return nil
}

// Block is a list of statements in braces.
type Block struct {
	Statements []Node
}

// NewBlock returns a block of the given statements.
func NewBlock(stmts ...Node) *Block {
	return &Block{Statements: stmts}
}

func (*Block) RequiresTerminator() bool {
	return false
}

func (b *Block) AppendScript(w *Writer) error {
	w.WriteString("{")
	if err := w.Statements(b.Statements); err != nil {
		return err
	}
	w.WriteString("}")
	return nil
}

// DeclarationKind is the keyword a variable declaration starts with.
type DeclarationKind string

const (
	DeclareVar   DeclarationKind = "var"
	DeclareLet   DeclarationKind = "let"
	DeclareConst DeclarationKind = "const"
)

// Declarator is a single variable of a declaration with its optional initializer.
type Declarator struct {
	Name *Identifier
	Init Expression
}

// VarStatement declares one or more variables.
type VarStatement struct {
	Kind         DeclarationKind
	Declarations []Declarator
}

// Var returns a var declaration of name. A nil init declares the variable without an
// initializer. It panics if name is not a valid identifier.
func Var(name string, init Expression) *VarStatement {
	return (&VarStatement{Kind: DeclareVar}).And(name, init)
}

// And adds another variable to the declaration and returns it. It panics if name is not a
// valid identifier.
func (v *VarStatement) And(name string, init Expression) *VarStatement {
	d := Declarator{Name: Id(name)}
	if !isNil(init) {
		d.Init = init
	}
	v.Declarations = append(v.Declarations, d)
	return v
}

func (*VarStatement) RequiresTerminator() bool {
	return true
}

func (v *VarStatement) AppendScript(w *Writer) error {
	kind := v.Kind
	if kind == "" {
		kind = DeclareVar
	}
	switch kind {
	case DeclareVar, DeclareLet, DeclareConst:
	default:
		return fmt.Errorf("%w: unknown declaration kind %q", ErrInvalidOperation, string(kind))
	}
	if len(v.Declarations) == 0 {
		return fmt.Errorf("%w: %s declaration has no variables", ErrInvalidOperation, kind)
	}

	w.WriteString(string(kind))
	w.WriteString(" ")
	for i, d := range v.Declarations {
		if d.Name == nil {
			return fmt.Errorf("%w: declarator %d has no name", ErrInvalidOperation, i)
		}
		if i > 0 {
			w.WriteString(",")
		}
		if err := w.Expression(d.Name); err != nil {
			return err
		}
		if isNil(d.Init) {
			if kind == DeclareConst {
				return fmt.Errorf("%w: const %s has no initializer", ErrInvalidOperation, d.Name.Name())
			}
			continue
		}
		w.WriteString("=")
		if err := w.ListItem(d.Init); err != nil {
			return err
		}
	}
	return nil
}

// ReturnStatement returns from a function, with an optional value.
type ReturnStatement struct {
	Value Expression
}

// Return returns a return statement. A nil value returns nothing.
func Return(value Expression) *ReturnStatement {
	r := &ReturnStatement{}
	if !isNil(value) {
		r.Value = value
	}
	return r
}

func (*ReturnStatement) RequiresTerminator() bool {
	return true
}

func (r *ReturnStatement) AppendScript(w *Writer) error {
	w.WriteString("return")
	if isNil(r.Value) {
		return nil
	}
	w.WriteString(" ")
	return w.Expression(r.Value)
}

// IfStatement runs Then when Condition holds and Else, if present, otherwise.
type IfStatement struct {
	Condition Expression
	Then      Node
	Else      Node
}

// If returns an if statement without an else branch.
func If(condition Expression, then Node) *IfStatement {
	return &IfStatement{Condition: condition, Then: then}
}

// WithElse sets the else branch and returns the statement.
func (s *IfStatement) WithElse(els Node) *IfStatement {
	s.Else = els
	return s
}

func (*IfStatement) RequiresTerminator() bool {
	return false
}

func (s *IfStatement) AppendScript(w *Writer) error {
	if isNil(s.Condition) {
		return fmt.Errorf("%w: if statement has no condition", ErrInvalidOperation)
	}

	w.WriteString("if(")
	if err := w.Expression(s.Condition); err != nil {
		return err
	}
	w.WriteString(")")

	then := s.Then
	if !isNil(s.Else) && endsWithOpenIf(then) {
		// Otherwise the else branch would attach to the inner if.
		then = NewBlock(then)
	}
	if err := w.Statement(then); err != nil {
		return err
	}

	if isNil(s.Else) {
		return nil
	}
	if _, ok := s.Else.(*Block); ok {
		w.WriteString("else")
	} else {
		w.WriteString("else ")
	}
	return w.Statement(s.Else)
}

// endsWithOpenIf reports whether n is an if statement whose last branch has no else.
func endsWithOpenIf(n Node) bool {
	s, ok := n.(*IfStatement)
	if !ok || s == nil {
		return false
	}
	if isNil(s.Else) {
		return true
	}
	return endsWithOpenIf(s.Else)
}

// Comment is a block comment. It is written as /*Text*/ and needs no terminator.
type Comment struct {
	Text string
}

// NewComment returns a block comment.
func NewComment(text string) *Comment {
	return &Comment{Text: text}
}

func (*Comment) RequiresTerminator() bool {
	return false
}

func (c *Comment) AppendScript(w *Writer) error {
	w.WriteString("/*")
	w.WriteString(strings.ReplaceAll(c.Text, "*/", "* /"))
	w.WriteString("*/")
	return nil
}
