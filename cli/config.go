package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/newrelic/go-jsgen/js"
	"github.com/spf13/pflag"
)

// Default Config Values
const (
	defaultPackagePath = ""
	defaultPattern     = "."
	defaultOutputFile  = ""
	defaultDiffFile    = ""
	defaultDebug       = false
)

type Config struct {
	Debug              bool
	PackagePath        string
	Pattern            string
	OutputFile         string
	DiffFile           string
	AllDeclarations    bool
	AllowReservedWords bool
	ASCIIOnly          bool
}

// AddFlags registers the configuration flags on fs, storing their values in cfg.
func (cfg *Config) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&cfg.Debug, "debug", defaultDebug, "enable debugging output")
	fs.StringVar(&cfg.PackagePath, "path", defaultPackagePath, "specify the directory of the go packages to convert")
	fs.StringVar(&cfg.Pattern, "pattern", defaultPattern, "go package pattern to load, relative to --path")
	fs.StringVar(&cfg.OutputFile, "out", defaultOutputFile, "write the script to this file instead of stdout")
	fs.StringVar(&cfg.DiffFile, "diff", defaultDiffFile, "write a diff against the current --out file instead of replacing it")
	fs.BoolVar(&cfg.AllDeclarations, "all", false, "convert unexported declarations too")
	fs.BoolVar(&cfg.AllowReservedWords, "allow-reserved", false, "allow reserved words as identifiers")
	fs.BoolVar(&cfg.ASCIIOnly, "ascii", false, "escape non-ASCII characters in strings")
}

// Validate trims the configured values and checks that they can be used.
func (cfg *Config) Validate() error {
	cfg.PackagePath = strings.TrimSpace(cfg.PackagePath)
	cfg.Pattern = strings.TrimSpace(cfg.Pattern)
	cfg.OutputFile = strings.TrimSpace(cfg.OutputFile)
	cfg.DiffFile = strings.TrimSpace(cfg.DiffFile)

	if cfg.PackagePath == "" {
		return errors.New("--path is required")
	}
	if _, err := os.Stat(cfg.PackagePath); err != nil {
		return fmt.Errorf("--path \"%s\" is invalid: %v", cfg.PackagePath, err)
	}
	if cfg.Pattern == "" {
		cfg.Pattern = defaultPattern
	}

	if cfg.OutputFile != "" {
		if err := validateOutputFile(cfg.OutputFile, ".js", ".mjs", ".cjs"); err != nil {
			return err
		}
	}
	if cfg.DiffFile != "" {
		if cfg.OutputFile == "" {
			return errors.New("--diff requires --out to name the file the diff applies to")
		}
		if err := validateOutputFile(cfg.DiffFile, ".diff", ".patch"); err != nil {
			return err
		}
	}
	return nil
}

// validateOutputFile checks that the output path has one of the extensions and that its
// directory exists.
func validateOutputFile(path string, extensions ...string) error {
	ext := filepath.Ext(path)
	valid := false
	for _, e := range extensions {
		valid = valid || ext == e
	}
	if !valid {
		return fmt.Errorf("output file %s must have one of the extensions %s", path, strings.Join(extensions, ", "))
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("output file directory does not exist: %v", err)
	}
	return nil
}

// Options returns the render options selected by the configuration.
func (cfg *Config) Options() js.Options {
	opts := js.DefaultOptions()
	opts.AllowReservedWords = cfg.AllowReservedWords
	opts.ASCIIOnly = cfg.ASCIIOnly
	return opts
}

// Verbosity returns the log verbosity for the configuration.
func (cfg *Config) Verbosity() int {
	if cfg.Debug {
		return 2
	}
	return 0
}
