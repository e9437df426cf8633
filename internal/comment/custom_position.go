package comment

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/newrelic/go-jsgen/internal/util"
)

// getPosition creates a human readable string representing the position of a node in an application.
// In order to improve readability, the filename will be localized to the root of the application.
// The format of the string is as follows based on the positional info available:
//
// Info 					|		Formatting
// ------------------------------------------------------------------
// filename, line, column	|	filename line:column
// filename, line			|	filename line
// filename					|	filename
// invalid or empty			|	""
func getPosition(pkg *decorator.Package, node dst.Node, appRoot string) string {
	pos := util.Position(node, pkg)
	if pos == nil || pos.Filename == "" {
		return ""
	}

	path := localize(pos.Filename, appRoot)
	if pos.Line == 0 {
		return path
	}

	path += " " + strconv.Itoa(pos.Line)
	if pos.Column != 0 {
		path += ":" + strconv.Itoa(pos.Column)
	}
	return path
}

// localize drops every path segment before appRoot. Paths outside of the application are
// returned unchanged.
func localize(filename, appRoot string) string {
	segments := strings.Split(filepath.ToSlash(filename), "/")
	for i, segment := range segments {
		if appRoot != "" && segment == appRoot {
			return filepath.Join(segments[i:]...)
		}
	}
	return filename
}
