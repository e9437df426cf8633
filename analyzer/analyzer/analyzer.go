package analyzer

import (
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/newrelic/go-jsgen/internal/gosrc"
	"github.com/newrelic/go-jsgen/internal/util"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"
)

var Analyzer = &analysis.Analyzer{
	Name: "jsgen",
	Doc:  "reports package level constants and variables that jsgen can not convert to JavaScript",
	Run:  CheckPackage,
}

var allDeclarations bool

func init() {
	Analyzer.Flags.BoolVar(&allDeclarations, "all", false, "check unexported declarations too")
}

// CheckPackage runs the converter over the package of the pass and reports every declaration
// it had to skip. The console notes of the converter are not flushed; the diagnostics carry
// the same text.
func CheckPackage(p *analysis.Pass) (any, error) {
	pkg, err := decorate(p)
	if err != nil {
		return nil, err
	}

	converter := gosrc.NewConverter([]*decorator.Package{pkg}, "", allDeclarations)
	if err := converter.Convert(); err != nil {
		return nil, err
	}

	for _, skipped := range converter.Skipped() {
		p.Reportf(util.Pos(skipped.Node, skipped.Package), "%s can not be converted to JavaScript: %s", skipped.Name, skipped.Reason)
	}
	return nil, nil
}

// decorate wraps the syntax and type information of the pass in a decorated package, so the
// converter sees the same package it gets from decorator.Load.
func decorate(p *analysis.Pass) (*decorator.Package, error) {
	dec := decorator.NewDecorator(p.Fset)
	pkg := &decorator.Package{
		Package: &packages.Package{
			ID:        p.Pkg.Path(),
			Name:      p.Pkg.Name(),
			PkgPath:   p.Pkg.Path(),
			Fset:      p.Fset,
			Types:     p.Pkg,
			TypesInfo: p.TypesInfo,
		},
		Decorator: dec,
		Syntax:    make([]*dst.File, 0, len(p.Files)),
	}

	for _, f := range p.Files {
		file, err := dec.DecorateFile(f)
		if err != nil {
			return nil, err
		}
		pkg.Syntax = append(pkg.Syntax, file)
	}
	return pkg, nil
}
