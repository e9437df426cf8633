package js

// Node is a statement or an expression of the syntax tree.
type Node interface {
	// RequiresTerminator reports whether the node has to be followed by a semicolon when it is
	// used as a statement.
	RequiresTerminator() bool

	// AppendScript writes the JavaScript text of the node to w.
	AppendScript(w *Writer) error
}

// Expression is a Node that produces a value and can be embedded in other expressions.
type Expression interface {
	Node

	// Precedence returns the binding strength of the expression, used to decide whether it
	// has to be grouped when it is embedded in another expression.
	Precedence() Precedence
}

// expression implements the parts of Expression shared by the atomic expressions. Composite
// expressions override Precedence.
type expression struct{}

func (expression) RequiresTerminator() bool {
	return true
}

func (expression) Precedence() Precedence {
	return PrimaryPrecedence
}
