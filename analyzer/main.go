package main

import (
	"github.com/newrelic/go-jsgen/analyzer/analyzer"
	"golang.org/x/tools/go/analysis/multichecker"
)

func main() {
	multichecker.Main(analyzer.Analyzer)
}
