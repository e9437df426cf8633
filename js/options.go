package js

// Options control how a tree is rendered. They are supplied to the top level render call and
// passed unchanged to every node of the tree.
type Options struct {
	// AllowReservedWords permits identifiers that are reserved words in every position, not
	// only where an IdentifierName is allowed (property names and object literal keys).
	AllowReservedWords bool

	// ASCIIOnly escapes every non-ASCII character in string literals.
	ASCIIOnly bool

	// LineBreaks ends every top level statement of a script with a newline. Nested
	// statements stay on the line of their parent.
	LineBreaks bool
}

// DefaultOptions returns the options used by Render.
func DefaultOptions() Options {
	return Options{}
}
