package js

import (
	"fmt"
)

// BinaryOperator is an operator written between two operands, assignments included.
type BinaryOperator int

const (
	OpComma BinaryOperator = iota
	OpAssign
	OpAddAssign
	OpSubtractAssign
	OpMultiplyAssign
	OpDivideAssign
	OpModuloAssign
	OpShiftLeftAssign
	OpShiftRightAssign
	OpUnsignedShiftRightAssign
	OpBitwiseAndAssign
	OpBitwiseXorAssign
	OpBitwiseOrAssign
	OpOr
	OpAnd
	OpBitwiseOr
	OpBitwiseXor
	OpBitwiseAnd
	OpEqual
	OpNotEqual
	OpStrictEqual
	OpStrictNotEqual
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
	OpIn
	OpInstanceOf
	OpShiftLeft
	OpShiftRight
	OpUnsignedShiftRight
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
)

type operatorInfo struct {
	text  string
	level int
	assoc Associativity
}

var binaryOperators = [...]operatorInfo{
	OpComma:                    {",", LevelComma, LeftToRight},
	OpAssign:                   {"=", LevelAssignment, RightToLeft},
	OpAddAssign:                {"+=", LevelAssignment, RightToLeft},
	OpSubtractAssign:           {"-=", LevelAssignment, RightToLeft},
	OpMultiplyAssign:           {"*=", LevelAssignment, RightToLeft},
	OpDivideAssign:             {"/=", LevelAssignment, RightToLeft},
	OpModuloAssign:             {"%=", LevelAssignment, RightToLeft},
	OpShiftLeftAssign:          {"<<=", LevelAssignment, RightToLeft},
	OpShiftRightAssign:         {">>=", LevelAssignment, RightToLeft},
	OpUnsignedShiftRightAssign: {">>>=", LevelAssignment, RightToLeft},
	OpBitwiseAndAssign:         {"&=", LevelAssignment, RightToLeft},
	OpBitwiseXorAssign:         {"^=", LevelAssignment, RightToLeft},
	OpBitwiseOrAssign:          {"|=", LevelAssignment, RightToLeft},
	OpOr:                       {"||", LevelLogicalOr, LeftToRight},
	OpAnd:                      {"&&", LevelLogicalAnd, LeftToRight},
	OpBitwiseOr:                {"|", LevelBitwiseOr, LeftToRight},
	OpBitwiseXor:               {"^", LevelBitwiseXor, LeftToRight},
	OpBitwiseAnd:               {"&", LevelBitwiseAnd, LeftToRight},
	OpEqual:                    {"==", LevelEquality, LeftToRight},
	OpNotEqual:                 {"!=", LevelEquality, LeftToRight},
	OpStrictEqual:              {"===", LevelEquality, LeftToRight},
	OpStrictNotEqual:           {"!==", LevelEquality, LeftToRight},
	OpLess:                     {"<", LevelRelational, LeftToRight},
	OpLessOrEqual:              {"<=", LevelRelational, LeftToRight},
	OpGreater:                  {">", LevelRelational, LeftToRight},
	OpGreaterOrEqual:           {">=", LevelRelational, LeftToRight},
	OpIn:                       {" in ", LevelRelational, LeftToRight},
	OpInstanceOf:               {" instanceof ", LevelRelational, LeftToRight},
	OpShiftLeft:                {"<<", LevelShift, LeftToRight},
	OpShiftRight:               {">>", LevelShift, LeftToRight},
	OpUnsignedShiftRight:       {">>>", LevelShift, LeftToRight},
	OpAdd:                      {"+", LevelAdditive, LeftToRight},
	OpSubtract:                 {"-", LevelAdditive, LeftToRight},
	OpMultiply:                 {"*", LevelMultiplicative, LeftToRight},
	OpDivide:                   {"/", LevelMultiplicative, LeftToRight},
	OpModulo:                   {"%", LevelMultiplicative, LeftToRight},
}

func (op BinaryOperator) valid() bool {
	return op >= 0 && int(op) < len(binaryOperators)
}

func (op BinaryOperator) String() string {
	if !op.valid() {
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
	return binaryOperators[op].text
}

// Precedence returns the precedence of the operator.
func (op BinaryOperator) Precedence() Precedence {
	info := binaryOperators[op]
	return Precedence{Level: info.level, Associativity: info.assoc}
}

// Binary is an operation with a left and a right operand.
type Binary struct {
	expression
	Op    BinaryOperator
	Left  Expression
	Right Expression
}

// NewBinary returns left op right with both operands coerced. It panics if an operand can not
// be coerced to an expression.
func NewBinary(op BinaryOperator, left, right any) *Binary {
	return &Binary{Op: op, Left: MustCoerce(left), Right: MustCoerce(right)}
}

func (b *Binary) Precedence() Precedence {
	if !b.Op.valid() {
		return PrimaryPrecedence
	}
	return b.Op.Precedence()
}

func (b *Binary) AppendScript(w *Writer) error {
	switch {
	case !b.Op.valid():
		return fmt.Errorf("%w: unknown binary operator %d", ErrInvalidOperation, int(b.Op))
	case isNil(b.Left):
		return fmt.Errorf("%w: operation %q has no left operand", ErrInvalidOperation, b.Op.String())
	case isNil(b.Right):
		return fmt.Errorf("%w: operation %q has no right operand", ErrInvalidOperation, b.Op.String())
	}

	prec := b.Op.Precedence()
	if err := w.Operand(prec, Left, b.Left); err != nil {
		return err
	}
	w.WriteString(b.Op.String())
	return w.Operand(prec, Right, b.Right)
}

func Add(left, right any) *Binary            { return NewBinary(OpAdd, left, right) }
func Subtract(left, right any) *Binary       { return NewBinary(OpSubtract, left, right) }
func Multiply(left, right any) *Binary       { return NewBinary(OpMultiply, left, right) }
func Divide(left, right any) *Binary         { return NewBinary(OpDivide, left, right) }
func Modulo(left, right any) *Binary         { return NewBinary(OpModulo, left, right) }
func ShiftLeft(left, right any) *Binary      { return NewBinary(OpShiftLeft, left, right) }
func ShiftRight(left, right any) *Binary     { return NewBinary(OpShiftRight, left, right) }
func Less(left, right any) *Binary           { return NewBinary(OpLess, left, right) }
func LessOrEqual(left, right any) *Binary    { return NewBinary(OpLessOrEqual, left, right) }
func Greater(left, right any) *Binary        { return NewBinary(OpGreater, left, right) }
func GreaterOrEqual(left, right any) *Binary { return NewBinary(OpGreaterOrEqual, left, right) }
func In(left, right any) *Binary             { return NewBinary(OpIn, left, right) }
func InstanceOf(left, right any) *Binary     { return NewBinary(OpInstanceOf, left, right) }
func Equal(left, right any) *Binary          { return NewBinary(OpEqual, left, right) }
func NotEqual(left, right any) *Binary       { return NewBinary(OpNotEqual, left, right) }
func StrictEqual(left, right any) *Binary    { return NewBinary(OpStrictEqual, left, right) }
func StrictNotEqual(left, right any) *Binary { return NewBinary(OpStrictNotEqual, left, right) }
func BitwiseAnd(left, right any) *Binary     { return NewBinary(OpBitwiseAnd, left, right) }
func BitwiseXor(left, right any) *Binary     { return NewBinary(OpBitwiseXor, left, right) }
func BitwiseOr(left, right any) *Binary      { return NewBinary(OpBitwiseOr, left, right) }
func And(left, right any) *Binary            { return NewBinary(OpAnd, left, right) }
func Or(left, right any) *Binary             { return NewBinary(OpOr, left, right) }
func Assign(target, value any) *Binary       { return NewBinary(OpAssign, target, value) }

func UnsignedShiftRight(left, right any) *Binary {
	return NewBinary(OpUnsignedShiftRight, left, right)
}

// Sequence returns the comma operation of all expressions, evaluated from left to right. It
// panics when no expression is given.
func Sequence(first any, rest ...any) Expression {
	e := MustCoerce(first)
	for _, next := range rest {
		e = NewBinary(OpComma, e, next)
	}
	return e
}

// UnaryOperator is an operator applied to a single operand.
type UnaryOperator int

const (
	OpNot UnaryOperator = iota
	OpBitwiseNot
	OpPositive
	OpNegate
	OpTypeOf
	OpVoid
	OpDelete
	OpPreIncrement
	OpPreDecrement
	OpPostIncrement
	OpPostDecrement
)

var unaryOperators = [...]string{
	OpNot:           "!",
	OpBitwiseNot:    "~",
	OpPositive:      "+",
	OpNegate:        "-",
	OpTypeOf:        "typeof ",
	OpVoid:          "void ",
	OpDelete:        "delete ",
	OpPreIncrement:  "++",
	OpPreDecrement:  "--",
	OpPostIncrement: "++",
	OpPostDecrement: "--",
}

func (op UnaryOperator) valid() bool {
	return op >= 0 && int(op) < len(unaryOperators)
}

// Postfix reports whether the operator is written after its operand.
func (op UnaryOperator) Postfix() bool {
	return op == OpPostIncrement || op == OpPostDecrement
}

func (op UnaryOperator) String() string {
	if !op.valid() {
		return fmt.Sprintf("UnaryOperator(%d)", int(op))
	}
	return unaryOperators[op]
}

// Unary is an operation with a single operand.
type Unary struct {
	expression
	Op      UnaryOperator
	Operand Expression
}

// NewUnary returns the operation op applied to the coerced operand. It panics if the operand
// can not be coerced to an expression.
func NewUnary(op UnaryOperator, operand any) *Unary {
	return &Unary{Op: op, Operand: MustCoerce(operand)}
}

func (u *Unary) Precedence() Precedence {
	if u.Op.Postfix() {
		return Precedence{Level: LevelPostfix, Associativity: LeftToRight}
	}
	return Precedence{Level: LevelUnary, Associativity: RightToLeft}
}

func (u *Unary) AppendScript(w *Writer) error {
	switch {
	case !u.Op.valid():
		return fmt.Errorf("%w: unknown unary operator %d", ErrInvalidOperation, int(u.Op))
	case isNil(u.Operand):
		return fmt.Errorf("%w: operation %q has no operand", ErrInvalidOperation, u.Op.String())
	}

	if u.Op.Postfix() {
		if err := w.Operand(u.Precedence(), Left, u.Operand); err != nil {
			return err
		}
		w.WriteString(u.Op.String())
		return nil
	}

	w.WriteString(u.Op.String())
	return w.Operand(u.Precedence(), Right, u.Operand)
}

func Not(operand any) *Unary           { return NewUnary(OpNot, operand) }
func BitwiseNot(operand any) *Unary    { return NewUnary(OpBitwiseNot, operand) }
func Positive(operand any) *Unary      { return NewUnary(OpPositive, operand) }
func Negate(operand any) *Unary        { return NewUnary(OpNegate, operand) }
func TypeOf(operand any) *Unary        { return NewUnary(OpTypeOf, operand) }
func Void(operand any) *Unary          { return NewUnary(OpVoid, operand) }
func Delete(operand any) *Unary        { return NewUnary(OpDelete, operand) }
func PreIncrement(operand any) *Unary  { return NewUnary(OpPreIncrement, operand) }
func PreDecrement(operand any) *Unary  { return NewUnary(OpPreDecrement, operand) }
func PostIncrement(operand any) *Unary { return NewUnary(OpPostIncrement, operand) }
func PostDecrement(operand any) *Unary { return NewUnary(OpPostDecrement, operand) }
