package gosrc

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/newrelic/go-jsgen/internal/comment"
	"github.com/newrelic/go-jsgen/internal/util"
	"github.com/newrelic/go-jsgen/js"
	"github.com/tliron/commonlog"
	"golang.org/x/tools/go/packages"
)

var log = commonlog.GetLogger("jsgen.gosrc")

// DefaultPattern selects the package in the directory that is loaded.
const DefaultPattern = "."

// Load loads the packages matching patterns in dir, with syntax and type information.
func Load(dir string, patterns ...string) ([]*decorator.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	pkgs, err := decorator.Load(&packages.Config{Dir: dir, Mode: packages.LoadSyntax}, patterns...)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			errs = append(errs, fmt.Errorf("%s: %s", pkg.ID, pkgErr.Msg))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to load packages: %w", errors.Join(errs...))
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %s in %s", strings.Join(patterns, " "), dir)
	}
	return pkgs, nil
}

// Converter turns the package level declarations of loaded Go packages into one JavaScript
// script.
type Converter struct {
	userAppPath     string // path to the user's application as provided by the user
	allDeclarations bool
	packages        map[string]*PackageState // stores stateful information on packages by ID
	declared        map[string]string        // JavaScript names already declared, by package ID
	script          *js.Script
	skipped         []Skipped
	notes           *comment.ConsolePrinter
}

// Skipped is a declared name that could not be converted.
type Skipped struct {
	Package *decorator.Package
	Node    dst.Node // the name, or the whole spec when no single name is at fault
	Name    string
	Reason  string
}

type PackageState struct {
	pkg       *decorator.Package // the package being converted
	converted int                // number of declarations written for the package
	skipped   int                // number of declarations that could not be converted
}

// declaration is a single name of a const or var spec.
type declaration struct {
	tok   token.Token
	spec  *dst.ValueSpec
	index int // of the name in spec.Names
}

func (d declaration) name() *dst.Ident {
	return d.spec.Names[d.index]
}

// value returns the expression the name is declared with, or nil when the spec has none.
func (d declaration) value() dst.Expr {
	if d.index < len(d.spec.Values) {
		return d.spec.Values[d.index]
	}
	return nil
}

// NewConverter returns a converter for pkgs. Unless allDeclarations is set, only exported
// names are converted.
func NewConverter(pkgs []*decorator.Package, userAppPath string, allDeclarations bool) *Converter {
	c := &Converter{
		userAppPath:     userAppPath,
		allDeclarations: allDeclarations,
		packages:        map[string]*PackageState{},
		declared:        map[string]string{},
		script:          js.NewScript(),
		notes:           comment.NewConsolePrinter(userAppPath),
	}
	for _, pkg := range pkgs {
		c.packages[pkg.ID] = &PackageState{pkg: pkg}
	}
	return c
}

// Script returns the script the converter has written so far.
func (c *Converter) Script() *js.Script {
	return c.script
}

// Notes returns the console notes recorded while converting. They are printed when flushed.
func (c *Converter) Notes() *comment.ConsolePrinter {
	return c.notes
}

// Convert converts every package in ID order and every file in name order. Declarations keep
// their source order, except that initialized variables follow the order Go initializes them
// in when type information is available. Declarations that can not be converted are replaced
// by a comment and reported as a warning.
func (c *Converter) Convert() error {
	ids := make([]string, 0, len(c.packages))
	for id := range c.packages {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		state := c.packages[id]
		if len(ids) > 1 {
			c.script.Add(js.NewComment(" " + state.pkg.PkgPath + " "))
		}

		c.convertFiles(state, sortedFiles(state.pkg))
		log.Infof("%s: %d declarations converted, %d skipped", id, state.converted, state.skipped)
	}
	return nil
}

func sortedFiles(pkg *decorator.Package) []*dst.File {
	files := slices.Clone(pkg.Syntax)
	if pkg.Decorator == nil {
		return files
	}
	slices.SortStableFunc(files, func(a, b *dst.File) int {
		return strings.Compare(pkg.Decorator.Filenames[a], pkg.Decorator.Filenames[b])
	})
	return files
}

func (c *Converter) convertFiles(state *PackageState, files []*dst.File) {
	var decls []declaration
	for _, file := range files {
		decls = appendDeclarations(decls, file)
	}
	initOrder(decls, state.pkg)

	for _, decl := range decls {
		c.convertDeclaration(state, decl)
	}
}

func appendDeclarations(decls []declaration, file *dst.File) []declaration {
	for _, decl := range file.Decls {
		gen, ok := decl.(*dst.GenDecl)
		if !ok || (gen.Tok != token.CONST && gen.Tok != token.VAR) {
			continue
		}

		for _, spec := range gen.Specs {
			vs, ok := spec.(*dst.ValueSpec)
			if !ok {
				continue
			}
			for i := range vs.Names {
				decls = append(decls, declaration{tok: gen.Tok, spec: vs, index: i})
			}
		}
	}
	return decls
}

// initOrder rearranges the initialized variables among decls into the order the type checker
// initializes them in. JavaScript runs var statements top to bottom, so a variable has to
// come after the variables its value reads. Constants and variables without a value keep
// their places.
func initOrder(decls []declaration, pkg *decorator.Package) {
	if pkg.Package == nil || pkg.TypesInfo == nil || len(pkg.TypesInfo.InitOrder) == 0 {
		return
	}

	rank := map[types.Object]int{}
	for i, init := range pkg.TypesInfo.InitOrder {
		for _, v := range init.Lhs {
			rank[v] = i
		}
	}

	var slots []int
	for i, decl := range decls {
		if decl.tok != token.VAR {
			continue
		}
		if _, ok := rank[util.DefinedObject(decl.name(), pkg)]; ok {
			slots = append(slots, i)
		}
	}

	vars := make([]declaration, len(slots))
	for i, slot := range slots {
		vars[i] = decls[slot]
	}
	slices.SortStableFunc(vars, func(a, b declaration) int {
		return rank[util.DefinedObject(a.name(), pkg)] - rank[util.DefinedObject(b.name(), pkg)]
	})
	for i, slot := range slots {
		decls[slot] = vars[i]
	}
}

func (c *Converter) wanted(name string) bool {
	return name != "_" && (c.allDeclarations || token.IsExported(name))
}

func (c *Converter) skip(state *PackageState, node dst.Node, name string, reason string) {
	state.skipped++
	c.skipped = append(c.skipped, Skipped{Package: state.pkg, Node: node, Name: name, Reason: reason})
	comment.Warn(c.notes, state.pkg, node, c.script, "skipped "+name, reason)
}

// Skipped returns the names that could not be converted, in the order they were met.
func (c *Converter) Skipped() []Skipped {
	return c.skipped
}

func (c *Converter) convertDeclaration(state *PackageState, decl declaration) {
	pkg := state.pkg
	name, spec := decl.name(), decl.spec
	if !c.wanted(name.Name) {
		return
	}
	if len(spec.Values) != 0 && len(spec.Values) != len(spec.Names) {
		c.skip(state, spec, name.Name, "the values come from a single expression")
		return
	}
	if js.IsReservedWord(name.Name) {
		c.skip(state, name, name.Name, "the name is a reserved word in JavaScript")
		return
	}
	if other, ok := c.declared[name.Name]; ok {
		c.skip(state, name, name.Name, "already declared by "+other)
		return
	}

	value := decl.value()
	init, err := initializer(pkg, decl.tok, name, value)
	if err != nil {
		if log.AllowLevel(commonlog.Debug) && value != nil {
			log.Debugf("%s:\n%s", name.Name, util.DebugPrint(value))
		}
		c.skip(state, name, name.Name, err.Error())
		return
	}

	c.script.Add(js.Var(name.Name, init))
	c.declared[name.Name] = pkg.ID
	state.converted++
}

// initializer returns the JavaScript value a declared name starts with. Constants without a
// value, such as the iota sequences of a const block, get theirs from the type checker;
// variables without a value get the zero value of their type.
func initializer(pkg *decorator.Package, tok token.Token, name *dst.Ident, value dst.Expr) (js.Expression, error) {
	if tok == token.CONST {
		if v := util.DefinedConstant(name, pkg); v != nil {
			return ConstantExpr(v)
		}
		if value == nil {
			return nil, fmt.Errorf("%w: constant without value needs type information", ErrUnsupported)
		}
	}

	if value == nil {
		return ZeroValue(util.DefinedType(name, pkg)), nil
	}
	return ConvertExpr(value, pkg)
}

// ConvertFile converts the declarations of a single file into a script. The package may be
// nil, in which case nothing is known about types and constants are not folded.
func ConvertFile(file *dst.File, pkg *decorator.Package, allDeclarations bool) *js.Script {
	if pkg == nil {
		pkg = &decorator.Package{}
	}
	if pkg.Package == nil {
		pkg.Package = &packages.Package{ID: file.Name.Name, PkgPath: file.Name.Name}
	}

	c := NewConverter(nil, "", allDeclarations)
	state := &PackageState{pkg: pkg}
	c.packages[pkg.ID] = state
	c.convertFiles(state, []*dst.File{file})
	return c.script
}
