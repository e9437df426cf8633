package gosrc

import (
	"go/constant"
	"go/token"
	"go/types"
	"testing"

	"github.com/dave/dst/decorator"
	"github.com/newrelic/go-jsgen/js"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convertSource(t *testing.T, decls string, all bool) string {
	t.Helper()

	file, err := decorator.Parse("package consts\n\n" + decls + "\n")
	require.NoError(t, err)

	got, err := ConvertFile(file, nil, all).Render()
	require.NoError(t, err)
	return got
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name  string
		decls string
		all   bool
		want  string
	}{
		{name: "string constant", decls: `const Name = "jsgen"`, want: `var Name="jsgen";`},
		{name: "unexported names are skipped", decls: `const hidden = 1`, want: ""},
		{name: "all declarations", decls: `const hidden = 1`, all: true, want: `var hidden=1;`},
		{name: "blank names are skipped", decls: `var _ = 1`, all: true, want: ""},
		{name: "grouped declarations", decls: "const (\n\tMax = 10\n\tRatio = 1.5\n)", want: `var Max=10;var Ratio=1.5;`},
		{name: "several names", decls: `var A, B = 1, "b"`, want: `var A=1;var B="b";`},
		{name: "functions and types are ignored", decls: "type T int\n\nfunc F() {}\n\nvar V = 1", want: `var V=1;`},
		{name: "bool", decls: `var Enabled = true`, want: `var Enabled=true;`},
		{name: "nil", decls: `var Nothing error = nil`, want: `var Nothing=null;`},
		{name: "no value without type information", decls: `var Count int`, want: `var Count;`},
		{name: "slice", decls: `var Ports = []int{80, 443}`, want: `var Ports=[80,443];`},
		{name: "nested arrays", decls: `var Grid = [2][2]int{{1, 2}, {3, 4}}`, want: `var Grid=[[1,2],[3,4]];`},
		{
			name:  "map keeps source order",
			decls: `var Labels = map[string]string{"env": "prod", "content-type": "json", "class": "x"}`,
			want:  `var Labels={env:"prod","content-type":"json",class:"x"};`,
		},
		{name: "map with number keys", decls: `var Codes = map[int]string{404: "not found", -1: "unknown"}`, want: `var Codes={404:"not found","-1":"unknown"};`},
		{name: "struct", decls: `var Limits = Limit{Max: 10, Name: "x"}`, want: `var Limits={Max:10,Name:"x"};`},
		{name: "pointer to struct", decls: `var Ptr = &Limit{Max: 1}`, want: `var Ptr={Max:1};`},
		{name: "elided types", decls: `var Nested = map[string][]Limit{"a": {{Max: 1}}}`, want: `var Nested={a:[{Max:1}]};`},
		{name: "logical operators", decls: `var Check = Max > 5 && Ratio != 2`, want: `var Check=Max>5&&Ratio!==2;`},
		{name: "equality is strict", decls: `var Same = A == B`, want: `var Same=A===B;`},
		{name: "negation", decls: `var Neg = -Max`, want: `var Neg=-Max;`},
		{name: "double negation", decls: `var Pos = - -Max`, want: `var Pos=- -Max;`},
		{name: "bitwise complement", decls: `var Mask = ^0x0F`, want: `var Mask=~15;`},
		{name: "parentheses are recomputed", decls: `var Sum = ((1 + 2)) * (3)`, want: `var Sum=(1+2)*3;`},
		{name: "right operand grouping", decls: `var Diff = A - (B - C)`, want: `var Diff=A-(B-C);`},
		{name: "call", decls: `var Upper = strings.ToUpper("a")`, want: `var Upper=strings.ToUpper("a");`},
		{name: "index", decls: `var First = Ports[0]`, want: `var First=Ports[0];`},
		{
			name:  "literal forms",
			decls: `var Lits = []any{'a', 0b1010, 1_000_000, 0x10, 1e3, "\n", ` + "`raw`" + `}`,
			want:  `var Lits=[97,10,1000000,16,1000,"\n","raw"];`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertSource(t, tt.decls, tt.all))
		})
	}
}

func TestConvertFileSkipsUnsupportedDeclarations(t *testing.T) {
	tests := []struct {
		name  string
		decls string
		all   bool
		want  string
	}{
		{
			name:  "complex numbers",
			decls: `var C = 1i`,
			want:  `/* JSGEN WARN: skipped C; unsupported expression: 1i: complex numbers have no JavaScript equivalent */`,
		},
		{
			name:  "values from one expression",
			decls: `var A, B = pair()`,
			want: `/* JSGEN WARN: skipped A; the values come from a single expression */` +
				`/* JSGEN WARN: skipped B; the values come from a single expression */`,
		},
		{
			name:  "iota without type information",
			decls: "const (\n\tA = iota\n\tB\n)",
			want: `/* JSGEN WARN: skipped A; unsupported expression: iota: iota needs type information */` +
				`/* JSGEN WARN: skipped B; unsupported expression: constant without value needs type information */`,
		},
		{
			name:  "and not",
			decls: `var Clear = A &^ B`,
			want:  `/* JSGEN WARN: skipped Clear; unsupported expression: A &^ B: operator &^ has no JavaScript equivalent */`,
		},
		{
			name:  "function literal",
			decls: `var Fn = func() {}`,
			want:  `/* JSGEN WARN: skipped Fn; unsupported expression: func literal: no JavaScript equivalent */`,
		},
		{
			name:  "reserved word",
			decls: `var class = 1`,
			all:   true,
			want:  `/* JSGEN WARN: skipped class; the name is a reserved word in JavaScript */`,
		},
		{
			name:  "duplicate name",
			decls: "var A = 1\n\nfunc init() {}\n\nvar B, A = 2, 3",
			want:  `var A=1;var B=2;/* JSGEN WARN: skipped A; already declared by consts */`,
		},
		{
			name:  "a failed declaration does not stop the file",
			decls: "var A = 1i\n\nvar B = 2",
			want:  `/* JSGEN WARN: skipped A; unsupported expression: 1i: complex numbers have no JavaScript equivalent */var B=2;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertSource(t, tt.decls, tt.all))
		})
	}
}

func TestConvertExprErrors(t *testing.T) {
	_, err := ConvertExpr(nil, nil)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestConstantExpr(t *testing.T) {
	tests := []struct {
		name    string
		value   constant.Value
		want    string
		wantErr bool
	}{
		{name: "bool", value: constant.MakeBool(true), want: "true;"},
		{name: "string", value: constant.MakeString("a\"b"), want: `"a\"b";`},
		{name: "int", value: constant.MakeInt64(-42), want: "-42;"},
		{name: "float", value: constant.MakeFloat64(0.25), want: "0.25;"},
		{name: "large int", value: constant.MakeUint64(1 << 53), want: "9007199254740992;"},
		{name: "overflow", value: constant.Shift(constant.MakeInt64(1), token.SHL, 2000), wantErr: true},
		{name: "complex", value: constant.MakeImag(constant.MakeInt64(1)), wantErr: true},
		{name: "unknown", value: constant.MakeUnknown(), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ConstantExpr(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupported)
				return
			}
			require.NoError(t, err)

			got, err := js.Render(e)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZeroValue(t *testing.T) {
	point := types.NewStruct([]*types.Var{
		types.NewField(token.NoPos, nil, "X", types.Typ[types.Int], false),
		types.NewField(token.NoPos, nil, "label", types.Typ[types.String], false),
		types.NewField(token.NoPos, nil, "Next", types.NewPointer(types.Typ[types.Int]), false),
	}, nil)

	tests := []struct {
		name string
		typ  types.Type
		want string
	}{
		{name: "bool", typ: types.Typ[types.Bool], want: "false;"},
		{name: "string", typ: types.Typ[types.String], want: `"";`},
		{name: "float", typ: types.Typ[types.Float64], want: "0;"},
		{name: "complex", typ: types.Typ[types.Complex128], want: "null;"},
		{name: "slice", typ: types.NewSlice(types.Typ[types.Int]), want: "null;"},
		{name: "struct", typ: point, want: `{X:0,label:"",Next:null};`},
		{name: "array", typ: types.NewArray(types.Typ[types.Bool], 2), want: "[false,false];"},
		{
			name: "struct with a reserved field name",
			typ: types.NewStruct([]*types.Var{
				types.NewField(token.NoPos, nil, "class", types.NewStruct(nil, nil), false),
			}, nil),
			want: "{class:{}};",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := js.Render(ZeroValue(tt.typ))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Nil(t, ZeroValue(nil))
}
