package comment

import (
	"go/ast"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/packages"
)

func testPackage(t *testing.T, node dst.Node, filename string, line int) *decorator.Package {
	t.Helper()

	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, 1000)
	lines := make([]int, 0, line)
	for i := 0; i < line; i++ {
		lines = append(lines, i*10)
	}
	file.SetLines(lines)

	astNode := &ast.Ident{Name: "hi", NamePos: file.LineStart(line) + 3}
	return &decorator.Package{
		Decorator: &decorator.Decorator{
			Map: decorator.Map{
				Ast: decorator.AstMap{
					Nodes: map[dst.Node]ast.Node{
						node: astNode,
					},
				},
			},
		},
		Package: &packages.Package{
			Fset: fset,
		},
	}
}

func TestAddComment(t *testing.T) {
	node := &dst.Ident{Name: "hi"}
	filename := filepath.Join(string(filepath.Separator)+"src", "app", "consts.go")
	pkg := testPackage(t, node, filename, 3)

	tests := []struct {
		name     string
		pkg      *decorator.Package
		header   string
		info     []string
		expected string
	}{
		{
			name:     "without position",
			header:   InfoHeader,
			info:     []string{"additionalInfo"},
			expected: "JSGEN INFO - message\n\tadditionalInfo",
		},
		{
			name:     "with position",
			pkg:      pkg,
			header:   WarnHeader,
			expected: "JSGEN WARN - " + filepath.Join("app", "consts.go") + " 3:4 message",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testPrinter := &ConsolePrinter{appRoot: "app"}
			testPrinter.Add(tt.pkg, node, tt.header, "message", tt.info...)

			if assert.Len(t, testPrinter.entries, 1) {
				assert.Equal(t, tt.expected, testPrinter.entries[0].text)
				assert.Equal(t, tt.header, testPrinter.entries[0].header)
			}
		})
	}
}

func TestNilPrinter(t *testing.T) {
	var p *ConsolePrinter
	p.Add(nil, dst.NewIdent("hi"), InfoHeader, "message")
	p.Flush()
	assert.Equal(t, 0, p.Len())
}

func TestLocalize(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		appRoot  string
		expected string
	}{
		{name: "inside app", filename: "/home/me/app/pkg/a.go", appRoot: "app", expected: filepath.Join("app", "pkg", "a.go")},
		{name: "outside app", filename: "/home/me/lib/a.go", appRoot: "app", expected: "/home/me/lib/a.go"},
		{name: "no app root", filename: "/home/me/app/a.go", appRoot: "", expected: "/home/me/app/a.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, localize(tt.filename, tt.appRoot))
		})
	}
}
