package js

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Number is a numeric literal.
type Number struct {
	expression
	Value float64
}

// Num returns a numeric literal.
func Num(value float64) *Number {
	return &Number{Value: value}
}

// Precedence of a negative number is that of the unary minus it is written with.
func (n *Number) Precedence() Precedence {
	if n.Value < 0 {
		return Precedence{Level: LevelUnary, Associativity: RightToLeft}
	}
	return PrimaryPrecedence
}

func (n *Number) AppendScript(w *Writer) error {
	text := FormatNumber(n.Value)
	if w.propertyName && n.Value < 0 {
		// a property name can not start with a sign
		w.buf = appendQuoted(w.buf, text, w.opts.ASCIIOnly)
		return nil
	}
	w.WriteString(text)
	return nil
}

// FormatNumber returns the source text of a number the way Number.prototype.toString does:
// decimal notation between 1e-6 and 1e21, exponent notation outside of it.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[0]
	exp = strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + string(sign) + exp
}

// String is a string literal.
type String struct {
	expression
	Value string
}

// Str returns a string literal.
func Str(value string) *String {
	return &String{Value: value}
}

func (s *String) AppendScript(w *Writer) error {
	w.buf = appendQuoted(w.buf, s.Value, w.opts.ASCIIOnly)
	return nil
}

// Quote returns s as a double quoted string literal.
func Quote(s string) string {
	return string(appendQuoted(nil, s, false))
}

const hex = "0123456789ABCDEF"

func appendQuoted(buf []byte, s string, asciiOnly bool) []byte {
	buf = append(buf, '"')
	for i, r := range s {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\v':
			buf = append(buf, '\\', 'v')
		case 0:
			// "\0" followed by a digit would read as a legacy octal escape.
			if i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
				buf = append(buf, `\x00`...)
			} else {
				buf = append(buf, '\\', '0')
			}
		case '\u2028', '\u2029', utf8.RuneError:
			buf = appendUnicodeEscape(buf, r)
		default:
			switch {
			case r < 0x20 || r == 0x7F:
				buf = append(buf, '\\', 'x', hex[r>>4], hex[r&0xF])
			case asciiOnly && r > 0x7F:
				buf = appendUnicodeEscape(buf, r)
			default:
				buf = utf8.AppendRune(buf, r)
			}
		}
	}
	return append(buf, '"')
}

func appendUnicodeEscape(buf []byte, r rune) []byte {
	if r > 0xFFFF {
		r -= 0x10000
		buf = appendUnicodeEscape(buf, 0xD800+(r>>10))
		return appendUnicodeEscape(buf, 0xDC00+(r&0x3FF))
	}
	return append(buf, '\\', 'u', hex[r>>12&0xF], hex[r>>8&0xF], hex[r>>4&0xF], hex[r&0xF])
}

// Boolean is a true or false literal.
type Boolean struct {
	expression
	Value bool
}

// Bool returns a boolean literal.
func Bool(value bool) *Boolean {
	return &Boolean{Value: value}
}

func (b *Boolean) AppendScript(w *Writer) error {
	w.WriteString(strconv.FormatBool(b.Value))
	return nil
}

// NullLiteral is the null literal.
type NullLiteral struct {
	expression
}

// Null returns the null literal.
func Null() *NullLiteral {
	return &NullLiteral{}
}

func (*NullLiteral) AppendScript(w *Writer) error {
	w.WriteString("null")
	return nil
}
