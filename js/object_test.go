package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectLiteralProducesEmptyObject(t *testing.T) {
	got, err := Render(NewObjectLiteral())
	require.NoError(t, err)
	assert.Equal(t, "{};", got)
}

func TestObjectLiteralProducesObjectLiterals(t *testing.T) {
	expression := NewObjectLiteral(
		Property{Key: Id("a"), Value: Num(12)},
		Property{Key: Id("b"), Value: Str("Wrong!")},
		Property{Key: Id("c"), Value: nil},
	)

	assert.Equal(t, 3, expression.Len())
	got, err := Render(expression)
	require.NoError(t, err)
	assert.Equal(t, `{a:12,b:"Wrong!",c:null};`, got)

	expression.SetProperties([]Property{{Key: Id("a"), Value: Num(12)}})

	assert.Equal(t, 1, expression.Len())
	got, err = Render(expression)
	require.NoError(t, err)
	assert.Equal(t, "{a:12};", got)
}

func TestObjectLiteralHasHelpers(t *testing.T) {
	expression := NewObjectLiteral()

	expression = expression.WithProperty("name", "value")
	got, err := Render(expression)
	require.NoError(t, err)
	assert.Equal(t, `{name:"value"};`, got)

	expression = expression.WithProperties([]KeyValue{
		{Key: "key", Value: "value"},
		{Key: "price", Value: 1200},
	})
	got, err = Render(expression)
	require.NoError(t, err)
	assert.Equal(t, `{name:"value",key:"value",price:1200};`, got)

	expression = NewObjectLiteral().WithProperties(struct{ Key string }{Key: "Value"})
	got, err = Render(expression)
	require.NoError(t, err)
	assert.Equal(t, `{Key:"Value"};`, got)
}

func TestObjectLiteralHelpersRequireObject(t *testing.T) {
	var expression *ObjectLiteral

	assert.ErrorIs(t, expression.AddProperty("name", "value"), ErrInvalidArgument)
	assert.ErrorIs(t, expression.AddProperties(map[string]any{}), ErrInvalidArgument)
	assert.Panics(t, func() { expression.WithProperty("name", "value") })
	assert.Panics(t, func() { expression.WithProperties(struct{}{}) })
}

func TestObjectLiteralRejectsCompoundKeys(t *testing.T) {
	tests := []struct {
		name string
		add  func(o *ObjectLiteral) error
	}{
		{name: "struct key", add: func(o *ObjectLiteral) error { return o.AddProperty(struct{ A int }{1}, 2) }},
		{name: "map key", add: func(o *ObjectLiteral) error { return o.AddProperty(map[string]int{"a": 1}, 2) }},
		{name: "slice key", add: func(o *ObjectLiteral) error { return o.AddProperty([]int{1}, 2) }},
		{name: "operation key", add: func(o *ObjectLiteral) error { return o.AddProperty(Add(Id("a"), 1), 2) }},
		{name: "nil key", add: func(o *ObjectLiteral) error { return o.AddProperty(nil, 2) }},
		{name: "array keys of a map", add: func(o *ObjectLiteral) error { return o.AddProperties(map[[1]int]int{{1}: 2}) }},
		{name: "entry with a map key", add: func(o *ObjectLiteral) error {
			return o.AddProperties([]KeyValue{{Key: map[string]int{"a": 1}, Value: 2}})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := NewObjectLiteral()
			assert.ErrorIs(t, tt.add(obj), ErrInvalidArgument)
			assert.Equal(t, 0, obj.Len())
		})
	}

	_, err := Coerce(map[[1]int]int{{1}: 2})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	got, err := Render(NewObjectLiteral().WithProperty(true, 1).WithProperty(Str("s"), 2))
	require.NoError(t, err)
	assert.Equal(t, `{true:1,"s":2};`, got)
}

func TestObjectLiteralKeys(t *testing.T) {
	tests := []struct {
		name string
		obj  *ObjectLiteral
		want string
	}{
		{
			name: "duplicate keys are kept in order",
			obj:  NewObjectLiteral().WithProperty("a", 1).WithProperty("a", 2),
			want: "{a:1,a:2};",
		},
		{
			name: "reserved words are valid keys",
			obj:  NewObjectLiteral().WithProperty("class", "x").WithProperty("default", true),
			want: `{class:"x",default:true};`,
		},
		{
			name: "keys that are not identifiers are quoted",
			obj:  NewObjectLiteral().WithProperty("a-b", 1).WithProperty("", 2),
			want: `{"a-b":1,"":2};`,
		},
		{
			name: "numeric keys",
			obj:  NewObjectLiteral().WithProperty(1, "one"),
			want: `{1:"one"};`,
		},
		{
			name: "negative numeric keys are quoted",
			obj:  NewObjectLiteral().WithProperty(-1.5, "x").WithProperty("v", Num(-1)),
			want: `{"-1.5":"x",v:-1};`,
		},
		{
			name: "map keys are sorted",
			obj:  NewObjectLiteral().WithProperties(map[string]int{"b": 2, "a": 1, "c": 3}),
			want: "{a:1,b:2,c:3};",
		},
		{
			name: "numeric map keys are sorted by value",
			obj:  NewObjectLiteral().WithProperties(map[int]string{10: "x", 2: "y"}),
			want: `{2:"y",10:"x"};`,
		},
		{
			name: "another object literal",
			obj:  NewObjectLiteral().WithProperty("a", 1).WithProperties(NewObjectLiteral().WithProperty("b", 2)),
			want: "{a:1,b:2};",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.obj)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectLiteralValues(t *testing.T) {
	expression := NewObjectLiteral().
		WithProperty("list", []int{1, 2}).
		WithProperty("nested", map[string]any{"ok": true}).
		WithProperty("seq", Sequence(Id("a"), Id("b"))).
		WithProperty("sum", Add(Id("a"), 1))

	got, err := Render(expression)
	require.NoError(t, err)
	assert.Equal(t, "{list:[1,2],nested:{ok:true},seq:(a,b),sum:a+1};", got)
}

func TestObjectLiteralRequiresKeys(t *testing.T) {
	expression := NewObjectLiteral(Property{Value: Num(1)})

	_, err := Render(expression)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestObjectFrom(t *testing.T) {
	obj, err := ObjectFrom(map[string]any{"a": nil})
	require.NoError(t, err)
	got, err := Render(obj)
	require.NoError(t, err)
	assert.Equal(t, "{a:null};", got)

	_, err = ObjectFrom(42)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ObjectFrom(map[string]any{"s": NewScript()})
	assert.ErrorIs(t, err, ErrInvalidOperation)
}
