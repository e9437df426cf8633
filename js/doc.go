// js is a library that builds JavaScript syntax trees in memory and renders them as source text.
// It is a code generator, not a parser: nodes are created through factory functions and
// mutators, and handed to Render once the tree is complete. The rules below apply to every node
// type in this package:
//
// 1. Rendering is a depth-first walk that writes into a single Writer. A composite node never
// concatenates strings returned by its children; it asks the Writer to render each child in place.
// 2. Parentheses are never stored in the tree. Whenever a child expression is embedded in a
// parent, the Writer decides from both precedences whether the child has to be grouped, so the
// output always parses back to the tree that produced it.
// 3. Construction time checks fail eagerly (returned errors, or panics from the Must style
// helpers). Checks that depend on the tree being complete, such as the three parts of a
// conditional operation, fail when the node is rendered.
// 4. Nodes are not safe for concurrent mutation. A tree is owned by the caller building it.
package js
