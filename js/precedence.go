package js

// Associativity describes how operators of equal precedence group.
type Associativity int

const (
	LeftToRight Associativity = iota
	RightToLeft
)

func (a Associativity) String() string {
	if a == RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// Position is the side of an operator a child expression appears on.
type Position int

const (
	Left Position = iota
	Right
)

// Precedence levels of the JavaScript operators, from loosest to tightest binding.
const (
	LevelComma = iota
	LevelAssignment
	LevelConditional
	LevelLogicalOr
	LevelLogicalAnd
	LevelBitwiseOr
	LevelBitwiseXor
	LevelBitwiseAnd
	LevelEquality
	LevelRelational
	LevelShift
	LevelAdditive
	LevelMultiplicative
	LevelUnary
	LevelPostfix
	LevelCall
	LevelPrimary
)

// Precedence is the binding strength of an expression. Two precedences are equal when both
// the level and the associativity match, so values can be compared with ==.
type Precedence struct {
	Level         int
	Associativity Associativity
}

// PrimaryPrecedence is the precedence of atomic expressions such as literals and identifiers.
var PrimaryPrecedence = Precedence{Level: LevelPrimary, Associativity: LeftToRight}

// NeedsParens reports whether a child expression has to be grouped when it is embedded on the
// given side of an operator with the parent precedence.
func NeedsParens(parent, child Precedence, pos Position) bool {
	switch {
	case child.Level < parent.Level:
		return true
	case child.Level > parent.Level:
		return false
	}

	if parent.Associativity == LeftToRight {
		return pos == Right
	}
	return pos == Left
}
