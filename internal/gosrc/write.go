package gosrc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/newrelic/go-jsgen/js"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
)

// Render returns the JavaScript text of everything converted so far, one declaration per
// line.
func (c *Converter) Render(opts js.Options) (string, error) {
	opts.LineBreaks = true
	return c.script.RenderWithOptions(opts)
}

// Fprint writes the rendered script to w.
func (c *Converter) Fprint(w io.Writer, opts js.Options) error {
	text, err := c.Render(opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// WriteFile writes the rendered script to outputFile, replacing its contents.
func (c *Converter) WriteFile(outputFile string, opts js.Options) error {
	text, err := c.Render(opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return err
	}
	log.Noticef("script written to %s", outputFile)
	return nil
}

// WriteDiff writes a patch to diffFile that turns the current contents of outputFile into the
// rendered script. A missing outputFile counts as empty, so the patch creates it.
func (c *Converter) WriteDiff(diffFile, outputFile string, opts js.Options) error {
	text, err := c.Render(opts)
	if err != nil {
		return err
	}

	patch, err := Diff(outputFile, text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(diffFile, []byte(patch), 0644); err != nil {
		return err
	}
	log.Noticef("changes written to %s", diffFile)
	return nil
}

// Diff returns a unified diff between the contents of outputFile and text. The file name in
// the patch headers is the base name of outputFile.
func Diff(outputFile, text string) (string, error) {
	original, err := os.ReadFile(outputFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to read %s: %w", outputFile, err)
	}

	return godiffpatch.GeneratePatch(filepath.Base(outputFile), string(original), text), nil
}
