package gosrc

import (
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"math"
	"path"
	"strconv"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/newrelic/go-jsgen/internal/util"
	"github.com/newrelic/go-jsgen/js"
)

// ErrUnsupported is returned for Go expressions that have no JavaScript equivalent.
var ErrUnsupported = errors.New("unsupported expression")

var binaryOperators = map[token.Token]js.BinaryOperator{
	token.ADD:  js.OpAdd,
	token.SUB:  js.OpSubtract,
	token.MUL:  js.OpMultiply,
	token.QUO:  js.OpDivide,
	token.REM:  js.OpModulo,
	token.AND:  js.OpBitwiseAnd,
	token.OR:   js.OpBitwiseOr,
	token.XOR:  js.OpBitwiseXor,
	token.SHL:  js.OpShiftLeft,
	token.SHR:  js.OpShiftRight,
	token.LAND: js.OpAnd,
	token.LOR:  js.OpOr,
	token.EQL:  js.OpStrictEqual,
	token.NEQ:  js.OpStrictNotEqual,
	token.LSS:  js.OpLess,
	token.LEQ:  js.OpLessOrEqual,
	token.GTR:  js.OpGreater,
	token.GEQ:  js.OpGreaterOrEqual,
}

var unaryOperators = map[token.Token]js.UnaryOperator{
	token.SUB: js.OpNegate,
	token.ADD: js.OpPositive,
	token.NOT: js.OpNot,
	token.XOR: js.OpBitwiseNot,
}

func unsupported(expr dst.Expr, pkg *decorator.Package, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrUnsupported, util.WriteExpr(expr, pkg), reason)
}

// ConvertExpr returns the JavaScript expression for a Go expression. Constant expressions are
// folded to their value when pkg carries type information, everything else is converted node
// by node. Parentheses of the Go source are dropped; the printer adds the ones JavaScript
// needs.
func ConvertExpr(expr dst.Expr, pkg *decorator.Package) (js.Expression, error) {
	if v := util.ConstantValue(expr, pkg); v != nil {
		if e, err := ConstantExpr(v); err == nil {
			return e, nil
		}
	}

	switch e := expr.(type) {
	case nil:
		return nil, fmt.Errorf("%w: missing expression", ErrUnsupported)
	case *dst.BasicLit:
		return basicLit(e, pkg)
	case *dst.Ident:
		return ident(e, pkg)
	case *dst.ParenExpr:
		return ConvertExpr(e.X, pkg)
	case *dst.UnaryExpr:
		return unaryExpr(e, pkg)
	case *dst.BinaryExpr:
		return binaryExpr(e, pkg)
	case *dst.CompositeLit:
		return compositeLit(e, pkg)
	case *dst.SelectorExpr:
		x, err := ConvertExpr(e.X, pkg)
		if err != nil {
			return nil, err
		}
		return member(x, e.Sel.Name, e, pkg)
	case *dst.IndexExpr:
		x, err := ConvertExpr(e.X, pkg)
		if err != nil {
			return nil, err
		}
		index, err := ConvertExpr(e.Index, pkg)
		if err != nil {
			return nil, err
		}
		return &js.IndexExpression{Object: x, Index: index}, nil
	case *dst.CallExpr:
		return callExpr(e, pkg)
	}
	return nil, unsupported(expr, pkg, "no JavaScript equivalent")
}

// ConstantExpr returns the literal for a constant value computed by the type checker.
func ConstantExpr(v constant.Value) (js.Expression, error) {
	switch v.Kind() {
	case constant.Bool:
		return js.Bool(constant.BoolVal(v)), nil
	case constant.String:
		return js.Str(constant.StringVal(v)), nil
	case constant.Int, constant.Float:
		f, _ := constant.Float64Val(v)
		if math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: constant %s overflows a JavaScript number", ErrUnsupported, v.ExactString())
		}
		return js.Num(f), nil
	}
	return nil, fmt.Errorf("%w: %v constant %s", ErrUnsupported, v.Kind(), v.ExactString())
}

// ZeroValue returns the JavaScript value of the zero value of t. It returns nil when t is
// unknown.
func ZeroValue(t types.Type) js.Expression {
	if t == nil {
		return nil
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		switch info := u.Info(); {
		case info&types.IsBoolean != 0:
			return js.Bool(false)
		case info&types.IsString != 0:
			return js.Str("")
		case info&types.IsNumeric != 0 && info&types.IsComplex == 0:
			return js.Num(0)
		}
	case *types.Struct:
		props := make([]js.Property, u.NumFields())
		for i := range props {
			props[i] = js.Property{Key: fieldKey(u.Field(i).Name()), Value: zeroOrNull(u.Field(i).Type())}
		}
		return js.NewObjectLiteral(props...)
	case *types.Array:
		elems := make([]js.Expression, u.Len())
		for i := range elems {
			elems[i] = zeroOrNull(u.Elem())
		}
		return &js.ArrayLiteral{Elements: elems}
	}
	return js.Null()
}

func zeroOrNull(t types.Type) js.Expression {
	if z := ZeroValue(t); z != nil {
		return z
	}
	return js.Null()
}

func basicLit(lit *dst.BasicLit, pkg *decorator.Package) (js.Expression, error) {
	switch lit.Kind {
	case token.INT:
		if i, err := strconv.ParseInt(lit.Value, 0, 64); err == nil {
			return js.Num(float64(i)), nil
		}
		if u, err := strconv.ParseUint(lit.Value, 0, 64); err == nil {
			return js.Num(float64(u)), nil
		}
	case token.FLOAT:
		if f, err := strconv.ParseFloat(lit.Value, 64); err == nil {
			return js.Num(f), nil
		}
	case token.CHAR:
		if s, err := strconv.Unquote(lit.Value); err == nil {
			r := []rune(s)
			if len(r) == 1 {
				return js.Num(float64(r[0])), nil
			}
		}
	case token.STRING:
		if s, err := strconv.Unquote(lit.Value); err == nil {
			return js.Str(s), nil
		}
	case token.IMAG:
		return nil, unsupported(lit, pkg, "complex numbers have no JavaScript equivalent")
	}
	return nil, unsupported(lit, pkg, "malformed literal")
}

func ident(id *dst.Ident, pkg *decorator.Package) (js.Expression, error) {
	if id.Path != "" {
		qualifier, err := js.NewIdentifier(path.Base(id.Path))
		if err != nil {
			return nil, unsupported(id, pkg, err.Error())
		}
		return member(qualifier, id.Name, id, pkg)
	}

	switch id.Name {
	case "true":
		return js.Bool(true), nil
	case "false":
		return js.Bool(false), nil
	case "nil":
		return js.Null(), nil
	case "iota":
		return nil, unsupported(id, pkg, "iota needs type information")
	}

	jsIdent, err := js.NewIdentifier(id.Name)
	if err != nil {
		return nil, unsupported(id, pkg, err.Error())
	}
	return jsIdent, nil
}

func member(x js.Expression, name string, expr dst.Expr, pkg *decorator.Package) (js.Expression, error) {
	jsName, err := js.NewIdentifierName(name)
	if err != nil {
		return nil, unsupported(expr, pkg, err.Error())
	}
	return &js.Member{Object: x, Name: jsName}, nil
}

func unaryExpr(expr *dst.UnaryExpr, pkg *decorator.Package) (js.Expression, error) {
	operand, err := ConvertExpr(expr.X, pkg)
	if err != nil {
		return nil, err
	}

	if expr.Op == token.AND {
		// the address of a composite literal is the literal itself
		return operand, nil
	}

	op, ok := unaryOperators[expr.Op]
	if !ok {
		return nil, unsupported(expr, pkg, fmt.Sprintf("operator %s has no JavaScript equivalent", expr.Op))
	}
	unary := &js.Unary{Op: op, Operand: operand}

	b := integerType(expr, pkg)
	unsigned := b != nil && b.Info()&types.IsUnsigned != 0
	switch {
	case b == nil:
		return unary, nil
	case expr.Op == token.SUB && unsigned:
		return nil, unsupported(expr, pkg, fmt.Sprintf("negating %s wraps around in Go", b.Name()))
	case expr.Op != token.XOR, !unsigned && !wideInteger(b):
		return unary, nil
	case b.Kind() == types.Uint32:
		return &js.Binary{Op: js.OpUnsignedShiftRight, Left: unary, Right: js.Num(0)}, nil
	}
	return nil, unsupported(expr, pkg, fmt.Sprintf("bitwise operations on %s lose bits in JavaScript", b.Name()))
}

func binaryExpr(expr *dst.BinaryExpr, pkg *decorator.Package) (js.Expression, error) {
	op, ok := binaryOperators[expr.Op]
	if !ok {
		return nil, unsupported(expr, pkg, fmt.Sprintf("operator %s has no JavaScript equivalent", expr.Op))
	}

	left, err := ConvertExpr(expr.X, pkg)
	if err != nil {
		return nil, err
	}
	right, err := ConvertExpr(expr.Y, pkg)
	if err != nil {
		return nil, err
	}
	binary := &js.Binary{Op: op, Left: left, Right: right}

	// JavaScript numbers are doubles and its bitwise operators work on 32 bits
	b := integerType(expr, pkg)
	switch {
	case b == nil:
		return binary, nil
	case expr.Op == token.QUO:
		return truncate(binary), nil
	case !bitwiseOperators[expr.Op]:
		return binary, nil
	case wideInteger(b):
		return nil, unsupported(expr, pkg, fmt.Sprintf("bitwise operations on %s lose bits in JavaScript", b.Name()))
	case b.Kind() == types.Int32:
		return binary, nil
	case b.Kind() == types.Uint32 && expr.Op == token.SHR:
		binary.Op = js.OpUnsignedShiftRight
		return binary, nil
	case b.Kind() == types.Uint32:
		return &js.Binary{Op: js.OpUnsignedShiftRight, Left: binary, Right: js.Num(0)}, nil
	case expr.Op == token.SHL:
		return nil, unsupported(expr, pkg, fmt.Sprintf("shifting %s left overflows differently in JavaScript", b.Name()))
	}
	return binary, nil
}

var bitwiseOperators = map[token.Token]bool{
	token.AND: true,
	token.OR:  true,
	token.XOR: true,
	token.SHL: true,
	token.SHR: true,
}

// integerType returns the integer type of expr, or nil when expr is not an integer or its
// type is unknown.
func integerType(expr dst.Expr, pkg *decorator.Package) *types.Basic {
	t := util.TypeOf(expr, pkg)
	if t == nil {
		return nil
	}
	b, ok := t.Underlying().(*types.Basic)
	if !ok || b.Info()&types.IsInteger == 0 {
		return nil
	}
	return b
}

// integerSizes holds the size in bytes of the integer kinds; int, uint and uintptr count as
// 64 bits.
var integerSizes = map[types.BasicKind]int{
	types.Int8:   1,
	types.Uint8:  1,
	types.Int16:  2,
	types.Uint16: 2,
	types.Int32:  4,
	types.Uint32: 4,
}

func integerSize(b *types.Basic) int {
	if size, ok := integerSizes[b.Kind()]; ok {
		return size
	}
	return 8
}

func wideInteger(b *types.Basic) bool {
	return integerSize(b) == 8
}

// holds reports whether every value of the integer type from is a value of to.
func holds(to, from *types.Basic) bool {
	toSigned := to.Info()&types.IsUnsigned == 0
	fromSigned := from.Info()&types.IsUnsigned == 0
	switch {
	case to.Kind() == from.Kind():
		return true
	case toSigned == fromSigned:
		return integerSize(to) >= integerSize(from)
	case toSigned:
		return integerSize(to) > integerSize(from)
	}
	return false
}

func truncate(e js.Expression) js.Expression {
	return js.Invoke(js.Dot(js.Id("Math"), "trunc"), e)
}

// conversion converts the operand of a conversion to type to. Conversions that only change
// the Go type keep the value of their operand.
func conversion(call *dst.CallExpr, pkg *decorator.Package) (js.Expression, error) {
	arg := call.Args[0]
	operand, err := ConvertExpr(arg, pkg)
	if err != nil {
		return nil, err
	}

	to, from := util.TypeOf(call, pkg), util.TypeOf(arg, pkg)
	if to == nil || from == nil {
		return operand, nil
	}

	if slice, ok := to.Underlying().(*types.Slice); ok {
		if elem, ok := slice.Elem().Underlying().(*types.Basic); ok && (elem.Kind() == types.Uint8 || elem.Kind() == types.Int32) {
			return nil, unsupported(call, pkg, "byte and rune slices have no JavaScript equivalent")
		}
		return operand, nil
	}

	toBasic, ok := to.Underlying().(*types.Basic)
	if !ok {
		return operand, nil
	}
	fromBasic, _ := from.Underlying().(*types.Basic)

	switch {
	case toBasic.Info()&types.IsString != 0 && (fromBasic == nil || fromBasic.Info()&types.IsString == 0):
		return nil, unsupported(call, pkg, "converting to string from anything but a string changes the value in JavaScript")
	case toBasic.Info()&types.IsInteger == 0 || fromBasic == nil:
		return operand, nil
	case fromBasic.Info()&types.IsFloat != 0:
		return truncate(operand), nil
	case fromBasic.Info()&types.IsInteger != 0 && !holds(toBasic, fromBasic):
		return nil, unsupported(call, pkg, fmt.Sprintf("converting %s to %s wraps around in Go", fromBasic.Name(), toBasic.Name()))
	}
	return operand, nil
}

func callExpr(call *dst.CallExpr, pkg *decorator.Package) (js.Expression, error) {
	if call.Ellipsis {
		return nil, unsupported(call, pkg, "variadic calls have no JavaScript equivalent")
	}

	if util.IsType(call.Fun, pkg) && len(call.Args) == 1 {
		return conversion(call, pkg)
	}

	callee, err := ConvertExpr(call.Fun, pkg)
	if err != nil {
		return nil, err
	}

	args := make([]js.Expression, 0, len(call.Args))
	for _, arg := range call.Args {
		a, err := ConvertExpr(arg, pkg)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return &js.Call{Callee: callee, Arguments: args}, nil
}

// compositeLit converts map and struct literals to object literals and array and slice
// literals to array literals. Literals of unknown type are objects when their elements are
// keyed.
func compositeLit(lit *dst.CompositeLit, pkg *decorator.Package) (js.Expression, error) {
	if util.TypeOf(lit, pkg) != nil {
		return typedLit(lit, pkg)
	}

	switch lit.Type.(type) {
	case *dst.ArrayType:
		return arrayLit(lit, pkg)
	case *dst.MapType:
		return mapLit(lit, pkg)
	}
	if len(lit.Elts) > 0 {
		if _, keyed := lit.Elts[0].(*dst.KeyValueExpr); keyed {
			return structLit(lit, nil, pkg)
		}
	}
	return arrayLit(lit, pkg)
}

// typedLit dispatches on the type the type checker assigned to the literal.
func typedLit(lit *dst.CompositeLit, pkg *decorator.Package) (js.Expression, error) {
	t := util.TypeOf(lit, pkg)
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		t = ptr.Elem()
	}

	switch t.Underlying().(type) {
	case *types.Map:
		return mapLit(lit, pkg)
	case *types.Struct:
		return structLit(lit, util.StructFields(lit, pkg), pkg)
	case *types.Array, *types.Slice:
		return arrayLit(lit, pkg)
	}
	return nil, unsupported(lit, pkg, "composite literal of unknown kind")
}

func arrayLit(lit *dst.CompositeLit, pkg *decorator.Package) (js.Expression, error) {
	elems := make([]js.Expression, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		if kv, ok := elt.(*dst.KeyValueExpr); ok {
			return nil, unsupported(kv, pkg, "indexed array elements")
		}

		e, err := ConvertExpr(elt, pkg)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return &js.ArrayLiteral{Elements: elems}, nil
}

// mapLit keeps the entries in source order. Keys must be string or number constants.
func mapLit(lit *dst.CompositeLit, pkg *decorator.Package) (js.Expression, error) {
	obj := js.NewObjectLiteral()
	for _, elt := range lit.Elts {
		kv, ok := elt.(*dst.KeyValueExpr)
		if !ok {
			return nil, unsupported(elt, pkg, "map element without key")
		}

		key, err := ConvertExpr(kv.Key, pkg)
		if err != nil {
			return nil, err
		}
		switch k := key.(type) {
		case *js.String:
			key = fieldKey(k.Value)
		case *js.Number:
		case *js.Unary:
			n, ok := k.Operand.(*js.Number)
			if !ok || k.Op != js.OpNegate {
				return nil, unsupported(kv.Key, pkg, "map keys must be string or number constants")
			}
			key = js.Num(-n.Value)
		default:
			return nil, unsupported(kv.Key, pkg, "map keys must be string or number constants")
		}

		value, err := ConvertExpr(kv.Value, pkg)
		if err != nil {
			return nil, err
		}
		if err := obj.AddProperty(key, value); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// structLit converts a struct literal. Unkeyed elements take the names of the struct
// fields, which are only known with type information.
func structLit(lit *dst.CompositeLit, fields []string, pkg *decorator.Package) (js.Expression, error) {
	obj := js.NewObjectLiteral()
	for i, elt := range lit.Elts {
		var name string
		value := elt
		if kv, ok := elt.(*dst.KeyValueExpr); ok {
			id, ok := kv.Key.(*dst.Ident)
			if !ok {
				return nil, unsupported(kv.Key, pkg, "struct field keys must be identifiers")
			}
			name, value = id.Name, kv.Value
		} else if i < len(fields) {
			name = fields[i]
		} else {
			return nil, unsupported(lit, pkg, "unkeyed struct fields need type information")
		}

		v, err := ConvertExpr(value, pkg)
		if err != nil {
			return nil, err
		}
		if err := obj.AddProperty(fieldKey(name), v); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// fieldKey returns an identifier key for names that are valid identifier names and a
// string key for everything else.
func fieldKey(name string) js.Expression {
	if id, err := js.NewIdentifierName(name); err == nil {
		return id
	}
	return js.Str(name)
}
