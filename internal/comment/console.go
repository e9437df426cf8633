package comment

import (
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// loggers of every package that imports this one use the simple backend
var log = commonlog.GetLogger("jsgen.comment")

type entry struct {
	header string
	text   string
}

// ConsolePrinter collects the notes of one conversion until they are flushed. It is not safe
// for concurrent use; every converter owns its own.
type ConsolePrinter struct {
	appRoot string
	entries []entry
}

// NewConsolePrinter returns a printer that shows file names relative to applicationPath.
func NewConsolePrinter(applicationPath string) *ConsolePrinter {
	p := &ConsolePrinter{}
	if applicationPath != "" {
		p.appRoot = filepath.Base(filepath.Clean(applicationPath))
	}
	return p
}

// Add records a note that will be printed to the console when the printer is flushed.
// The message is the main note, and additionalInfo is a list of optional
// details that will be printed on new lines below the main note.
func (p *ConsolePrinter) Add(pkg *decorator.Package, node dst.Node, header, message string, additionalInfo ...string) {
	if p == nil {
		return
	}

	b := strings.Builder{}
	b.WriteString(header)
	b.WriteString(" - ")
	if pos := getPosition(pkg, node, p.appRoot); pos != "" {
		b.WriteString(pos)
		b.WriteByte(' ')
	}
	b.WriteString(message)
	for _, info := range additionalInfo {
		b.WriteString("\n\t")
		b.WriteString(info)
	}

	p.entries = append(p.entries, entry{header: header, text: b.String()})
}

// Len returns the number of notes waiting to be flushed.
func (p *ConsolePrinter) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Flush logs all the recorded notes. Warnings are logged at warning level,
// everything else as a notice.
func (p *ConsolePrinter) Flush() {
	if p == nil {
		return
	}

	for _, e := range p.entries {
		if e.header == WarnHeader {
			log.Warning(e.text)
		} else {
			log.Notice(e.text)
		}
	}
	p.entries = nil
}
