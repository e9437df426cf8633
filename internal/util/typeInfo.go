package util

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// astNode returns the go/ast node a dst node was decorated from, or nil if the package was not
// loaded with type information.
func astNode(node dst.Node, pkg *decorator.Package) ast.Node {
	if node == nil || pkg == nil || pkg.Decorator == nil || pkg.Package == nil {
		return nil
	}
	return pkg.Decorator.Ast.Nodes[node]
}

// Pos returns the position of node in the file set of pkg, or token.NoPos when it is unknown.
func Pos(node dst.Node, pkg *decorator.Package) token.Pos {
	n := astNode(node, pkg)
	if n == nil {
		return token.NoPos
	}
	return n.Pos()
}

// Position returns the source position of node in pkg.
func Position(node dst.Node, pkg *decorator.Package) *token.Position {
	pos := Pos(node, pkg)
	if !pos.IsValid() || pkg.Fset == nil {
		return nil
	}

	position := pkg.Fset.Position(pos)
	return &position
}

// ConstantValue returns the value the type checker folded expr into, or nil when expr is not a
// constant expression or no type information is available.
func ConstantValue(expr dst.Expr, pkg *decorator.Package) constant.Value {
	astExpr, ok := astNode(expr, pkg).(ast.Expr)
	if !ok || pkg.TypesInfo == nil {
		return nil
	}

	tv, ok := pkg.TypesInfo.Types[astExpr]
	if !ok {
		return nil
	}
	return tv.Value
}

// DefinedConstant returns the value of the constant declared by ident. Constants declared
// without an explicit value, such as the iota sequences of a const block, only have a value
// through their definition.
func DefinedConstant(ident *dst.Ident, pkg *decorator.Package) constant.Value {
	astIdent, ok := astNode(ident, pkg).(*ast.Ident)
	if !ok || pkg.TypesInfo == nil {
		return nil
	}

	c, ok := pkg.TypesInfo.Defs[astIdent].(*types.Const)
	if !ok {
		return nil
	}
	return c.Val()
}

// DefinedObject returns the object declared by ident.
func DefinedObject(ident *dst.Ident, pkg *decorator.Package) types.Object {
	astIdent, ok := astNode(ident, pkg).(*ast.Ident)
	if !ok || pkg.TypesInfo == nil {
		return nil
	}
	return pkg.TypesInfo.Defs[astIdent]
}

// DefinedType returns the type of the variable or constant declared by ident.
func DefinedType(ident *dst.Ident, pkg *decorator.Package) types.Type {
	obj := DefinedObject(ident, pkg)
	if obj == nil {
		return nil
	}
	return obj.Type()
}

// TypeOf returns the type of expr according to go types info.
func TypeOf(expr dst.Expr, pkg *decorator.Package) types.Type {
	astExpr, ok := astNode(expr, pkg).(ast.Expr)
	if !ok || pkg.TypesInfo == nil {
		return nil
	}
	return pkg.TypesInfo.TypeOf(astExpr)
}

// IsType reports whether expr denotes a type, as the function of a conversion does.
func IsType(expr dst.Expr, pkg *decorator.Package) bool {
	astExpr, ok := astNode(expr, pkg).(ast.Expr)
	if !ok || pkg.TypesInfo == nil {
		return false
	}

	tv, ok := pkg.TypesInfo.Types[astExpr]
	return ok && tv.IsType()
}

// StructFields returns the field names of the struct type a composite literal builds, in
// declaration order, or nil when the type is unknown or not a struct.
func StructFields(lit *dst.CompositeLit, pkg *decorator.Package) []string {
	t := TypeOf(lit, pkg)
	if t == nil {
		return nil
	}
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		t = ptr.Elem()
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	names := make([]string, st.NumFields())
	for i := range names {
		names[i] = st.Field(i).Name()
	}
	return names
}

// WriteExpr returns the Go source text of expr.
func WriteExpr(expr dst.Expr, pkg *decorator.Package) string {
	if astExpr, ok := astNode(expr, pkg).(ast.Expr); ok {
		return types.ExprString(astExpr)
	}

	switch e := expr.(type) {
	case nil:
		return ""
	case *dst.Ident:
		if e.Path != "" {
			return e.Path + "." + e.Name
		}
		return e.Name
	case *dst.BasicLit:
		return e.Value
	case *dst.SelectorExpr:
		return WriteExpr(e.X, pkg) + "." + e.Sel.Name
	case *dst.ParenExpr:
		return "(" + WriteExpr(e.X, pkg) + ")"
	case *dst.UnaryExpr:
		return e.Op.String() + WriteExpr(e.X, pkg)
	case *dst.StarExpr:
		return "*" + WriteExpr(e.X, pkg)
	case *dst.BinaryExpr:
		return WriteExpr(e.X, pkg) + " " + e.Op.String() + " " + WriteExpr(e.Y, pkg)
	case *dst.IndexExpr:
		return WriteExpr(e.X, pkg) + "[" + WriteExpr(e.Index, pkg) + "]"
	case *dst.CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = WriteExpr(arg, pkg)
		}
		return WriteExpr(e.Fun, pkg) + "(" + strings.Join(args, ", ") + ")"
	case *dst.CompositeLit:
		return WriteExpr(e.Type, pkg) + "{...}"
	case *dst.FuncLit:
		return "func literal"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", expr), "*dst.")
}

// DebugPrint returns a string representation of the given node.
// This is useful for debugging purposes, and will pretty print
// the structure of a node in human readable form.
func DebugPrint(node dst.Node) string {
	objString := strings.Builder{}
	_ = dst.Fprint(&objString, node, dst.NotNilFilter)
	return strings.TrimSpace(objString.String())
}
