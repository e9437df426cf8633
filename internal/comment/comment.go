package comment

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/newrelic/go-jsgen/js"
)

const (
	InfoHeader string = "JSGEN INFO"
	WarnHeader string = "JSGEN WARN"
)

// Info appends a jsgen info comment to the script and records it in the printer.
// This function is used to add comments that will be written to the generated code.
// The message is the main comment, and additionalInfo is a list of optional
// comments that are joined to the main comment. The node is the go source the
// note is about; it is only used to locate the note in the console output.
// A nil printer records nothing.
func Info(printer *ConsolePrinter, pkg *decorator.Package, node dst.Node, script *js.Script, message string, additionalInfo ...string) {
	annotate(script, InfoHeader, message, additionalInfo)
	printer.Add(pkg, node, InfoHeader, message, additionalInfo...)
}

// Warn appends a jsgen warning comment to the script and records it in the printer.
func Warn(printer *ConsolePrinter, pkg *decorator.Package, node dst.Node, script *js.Script, message string, additionalInfo ...string) {
	annotate(script, WarnHeader, message, additionalInfo)
	printer.Add(pkg, node, WarnHeader, message, additionalInfo...)
}

func annotate(script *js.Script, header, message string, additionalInfo []string) {
	if script == nil {
		return
	}

	text := fmt.Sprintf(" %s: %s", header, message)
	if len(additionalInfo) > 0 {
		text += "; " + strings.Join(additionalInfo, "; ")
	}
	script.Add(js.NewComment(text + " "))
}
