package js

import (
	"fmt"
)

// Conditional is the conditional operation condition?then:else.
//
// The three parts can be set in any order after construction; the node only checks that all of
// them are present when it is rendered, so a partially built conditional can be held and
// completed later.
type Conditional struct {
	expression
	Condition Expression
	Then      Expression
	Else      Expression
}

// NewConditional returns a conditional operation. Nil parts are left unset.
func NewConditional(condition, then, els Expression) *Conditional {
	c := &Conditional{}
	if !isNil(condition) {
		c.Condition = condition
	}
	if !isNil(then) {
		c.Then = then
	}
	if !isNil(els) {
		c.Else = els
	}
	return c
}

// Iif returns condition?then:else with the branches coerced. It panics if a value can not be
// coerced to an expression.
func Iif(condition Expression, then, els any) *Conditional {
	return NewConditional(condition, MustCoerce(then), MustCoerce(els))
}

func (c *Conditional) Precedence() Precedence {
	return Precedence{Level: LevelConditional, Associativity: RightToLeft}
}

func (c *Conditional) AppendScript(w *Writer) error {
	switch {
	case isNil(c.Condition):
		return fmt.Errorf("%w: conditional operation has no condition", ErrInvalidOperation)
	case isNil(c.Then):
		return fmt.Errorf("%w: conditional operation has no then part", ErrInvalidOperation)
	case isNil(c.Else):
		return fmt.Errorf("%w: conditional operation has no else part", ErrInvalidOperation)
	}

	prec := c.Precedence()
	if err := w.Operand(prec, Left, c.Condition); err != nil {
		return err
	}
	w.WriteString("?")
	if err := w.Operand(prec, Right, c.Then); err != nil {
		return err
	}
	w.WriteString(":")
	return w.Operand(prec, Right, c.Else)
}
