package js

import (
	"bytes"
	"fmt"
)

// Writer accumulates the text of a single render pass. Every node of the tree writes into the
// same Writer, so rendering is linear in the size of the output.
type Writer struct {
	buf  []byte
	opts Options

	// propertyName is set while an object key or member name is written; reserved words are
	// valid there.
	propertyName bool

	// statementStart is the offset of the statement being written. A function expression
	// written there would read as a declaration.
	statementStart int
}

func newWriter(opts Options) *Writer {
	return &Writer{
		buf:            make([]byte, 0, 256),
		opts:           opts,
		statementStart: -1,
	}
}

// Options returns the options of the current render pass.
func (w *Writer) Options() Options {
	return w.opts
}

// WriteString appends raw text.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) String() string {
	return string(w.buf)
}

// Expression writes e without grouping it, unless e is a function expression at the start of
// a statement.
func (w *Writer) Expression(e Expression) error {
	if isNil(e) {
		return fmt.Errorf("%w: expression is nil", ErrInvalidArgument)
	}
	if _, ok := e.(*Function); ok && len(w.buf) == w.statementStart {
		return w.Group(e)
	}

	prev := w.propertyName
	w.propertyName = false
	start := len(w.buf)
	err := e.AppendScript(w)
	w.propertyName = prev
	if err != nil {
		return err
	}

	w.separate(start)
	return nil
}

// Operand writes child as an operand of an operator with the parent precedence, grouping it
// when NeedsParens says so.
func (w *Writer) Operand(parent Precedence, pos Position, child Expression) error {
	if isNil(child) {
		return fmt.Errorf("%w: operand is nil", ErrInvalidArgument)
	}
	if NeedsParens(parent, child.Precedence(), pos) {
		return w.Group(child)
	}
	return w.Expression(child)
}

// Group writes e wrapped in parentheses.
func (w *Writer) Group(e Expression) error {
	w.WriteString("(")
	if err := w.Expression(e); err != nil {
		return err
	}
	w.WriteString(")")
	return nil
}

// ListItem writes e as an element of a comma separated list: array elements, call arguments,
// object literal values and variable initializers. Only comma sequences need grouping there.
func (w *Writer) ListItem(e Expression) error {
	if isNil(e) {
		return w.Expression(Null())
	}
	return w.Operand(Precedence{Level: LevelAssignment, Associativity: RightToLeft}, Right, e)
}

// PropertyName writes e in a position where any IdentifierName, including reserved words, is
// valid.
func (w *Writer) PropertyName(e Expression) error {
	if isNil(e) {
		return fmt.Errorf("%w: property name is nil", ErrInvalidArgument)
	}

	prev := w.propertyName
	w.propertyName = true
	err := e.AppendScript(w)
	w.propertyName = prev
	return err
}

// Statement writes n followed by its terminator. A nil statement is written as an empty
// statement. An anonymous function used as a statement is grouped; a named one stays a
// declaration.
func (w *Writer) Statement(n Node) error {
	if isNil(n) {
		n = Empty()
	}

	prev, prevStart := w.propertyName, w.statementStart
	w.propertyName = false
	w.statementStart = len(w.buf)
	var err error
	if fn, ok := n.(*Function); ok && fn.Name == nil {
		err = w.Group(fn)
	} else {
		err = n.AppendScript(w)
	}
	w.propertyName, w.statementStart = prev, prevStart
	if err != nil {
		return err
	}

	if n.RequiresTerminator() {
		w.WriteString(";")
	}
	return nil
}

// Statements writes every statement of the list in order.
func (w *Writer) Statements(stmts []Node) error {
	for _, stmt := range stmts {
		if err := w.Statement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// separate keeps "+" and "-" from merging with the same character written right before the
// text that starts at start, which would turn "a- -b" into "a--b". It also breaks up "<!--",
// which opens a comment in scripts.
func (w *Writer) separate(start int) {
	if start == 0 || start >= len(w.buf) {
		return
	}

	c := w.buf[start]
	htmlComment := c == '!' && w.buf[start-1] == '<' && bytes.HasPrefix(w.buf[start:], []byte("!--"))
	if !htmlComment && ((c != '+' && c != '-') || w.buf[start-1] != c) {
		return
	}

	w.buf = append(w.buf, 0)
	copy(w.buf[start+1:], w.buf[start:])
	w.buf[start] = ' '
}

// Render returns the JavaScript text of n, rendered as a statement with the default options.
func Render(n Node) (string, error) {
	return RenderWithOptions(n, DefaultOptions())
}

// RenderWithOptions returns the JavaScript text of n, rendered as a statement. Nothing is
// returned unless the whole tree renders.
func RenderWithOptions(n Node, opts Options) (string, error) {
	if isNil(n) {
		return "", fmt.Errorf("%w: node is nil", ErrInvalidArgument)
	}

	w := newWriter(opts)
	if err := w.Statement(n); err != nil {
		return "", err
	}
	return w.String(), nil
}
