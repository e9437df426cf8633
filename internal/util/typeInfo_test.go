package util

import (
	"go/token"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/stretchr/testify/assert"
)

func TestWriteExprWithoutTypes(t *testing.T) {
	tests := []struct {
		name string
		expr dst.Expr
		want string
	}{
		{name: "nil", expr: nil, want: ""},
		{name: "ident", expr: dst.NewIdent("Limit"), want: "Limit"},
		{name: "qualified ident", expr: &dst.Ident{Name: "Second", Path: "time"}, want: "time.Second"},
		{name: "basic literal", expr: &dst.BasicLit{Value: `"x"`}, want: `"x"`},
		{name: "selector", expr: &dst.SelectorExpr{X: dst.NewIdent("cfg"), Sel: dst.NewIdent("Port")}, want: "cfg.Port"},
		{
			name: "binary",
			expr: &dst.BinaryExpr{X: dst.NewIdent("a"), Op: token.AND_NOT, Y: &dst.ParenExpr{X: &dst.UnaryExpr{Op: token.SUB, X: dst.NewIdent("b")}}},
			want: "a &^ (-b)",
		},
		{
			name: "call",
			expr: &dst.CallExpr{Fun: dst.NewIdent("f"), Args: []dst.Expr{dst.NewIdent("x"), &dst.IndexExpr{X: dst.NewIdent("y"), Index: &dst.BasicLit{Value: "0"}}}},
			want: "f(x, y[0])",
		},
		{name: "composite literal", expr: &dst.CompositeLit{Type: dst.NewIdent("T")}, want: "T{...}"},
		{name: "func literal", expr: &dst.FuncLit{}, want: "func literal"},
		{name: "other", expr: &dst.Ellipsis{}, want: "Ellipsis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WriteExpr(tt.expr, nil))
		})
	}
}

func TestHelpersWithoutTypes(t *testing.T) {
	ident := dst.NewIdent("x")
	lit := &dst.CompositeLit{}
	pkg := &decorator.Package{}

	for _, p := range []*decorator.Package{nil, pkg} {
		assert.Equal(t, token.NoPos, Pos(ident, p))
		assert.Nil(t, Position(ident, p))
		assert.Nil(t, ConstantValue(ident, p))
		assert.Nil(t, DefinedConstant(ident, p))
		assert.Nil(t, DefinedObject(ident, p))
		assert.Nil(t, DefinedType(ident, p))
		assert.Nil(t, TypeOf(ident, p))
		assert.False(t, IsType(ident, p))
		assert.Nil(t, StructFields(lit, p))
	}
}

func TestDebugPrint(t *testing.T) {
	out := DebugPrint(&dst.BinaryExpr{X: dst.NewIdent("a"), Y: dst.NewIdent("b")})
	assert.Contains(t, out, "*dst.BinaryExpr")
	assert.Contains(t, out, `Name: "a"`)
}
