package consts

import "strings"

const Name = "jsgen"

const (
	First = iota
	Second
)

var Upper = strings.ToUpper(Name)

var Limits = map[string]int{Name: First}

var Wave = 1i // want `Wave can not be converted to JavaScript: unsupported expression: 1i`

var Handler = func() {} // want `Handler can not be converted to JavaScript`

var private = 1i

var Low, High = bounds() // want `Low can not be converted` `High can not be converted`

func bounds() (int, int) {
	return 1, 2
}

var Bits int64 = 3

var Mask = Bits & 1 // want `Mask can not be converted to JavaScript: .*bitwise operations on int64`
