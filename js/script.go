package js

// Script is an ordered list of statements rendered as one unit. Nil entries are kept and
// render as empty statements, so the position of every statement in the output matches its
// position in the list.
type Script struct {
	statements []Node
}

// NewScript returns a script of the given statements.
func NewScript(stmts ...Node) *Script {
	s := &Script{}
	s.Add(stmts...)
	return s
}

// Add appends statements, nil entries included.
func (s *Script) Add(stmts ...Node) {
	s.statements = append(s.statements, stmts...)
}

// AddScript appends all statements of another script.
func (s *Script) AddScript(other *Script) {
	if other != nil {
		s.Add(other.statements...)
	}
}

// Statements returns the statements of the script.
func (s *Script) Statements() []Node {
	return s.statements
}

// Len returns the number of statements, nil entries included.
func (s *Script) Len() int {
	return len(s.statements)
}

func (*Script) RequiresTerminator() bool {
	return false
}

func (s *Script) AppendScript(w *Writer) error {
	if !w.Options().LineBreaks {
		return w.Statements(s.statements)
	}

	for _, stmt := range s.statements {
		if err := w.Statement(stmt); err != nil {
			return err
		}
		w.WriteString("\n")
	}
	return nil
}

// Render returns the JavaScript text of the script with the default options.
func (s *Script) Render() (string, error) {
	return RenderWithOptions(s, DefaultOptions())
}

// RenderWithOptions returns the JavaScript text of the script.
func (s *Script) RenderWithOptions(opts Options) (string, error) {
	return RenderWithOptions(s, opts)
}
