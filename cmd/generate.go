package cmd

import (
	"io"

	"github.com/newrelic/go-jsgen/cli"
	"github.com/newrelic/go-jsgen/internal/gosrc"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var generateConfig = &cli.Config{}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate a script",
	Long:  "generate a JavaScript script from the exported constants and variables of Go packages",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Generate(generateConfig, cmd.OutOrStdout())
	},
}

// Generate converts the packages selected by cfg and writes the script to the configured
// output file, a diff against it, or stdout.
func Generate(cfg *cli.Config, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	commonlog.Configure(cfg.Verbosity(), nil)

	pkgs, err := gosrc.Load(cfg.PackagePath, cfg.Pattern)
	if err != nil {
		return err
	}

	converter := gosrc.NewConverter(pkgs, cfg.PackagePath, cfg.AllDeclarations)
	defer converter.Notes().Flush()

	if err := converter.Convert(); err != nil {
		return err
	}

	switch {
	case cfg.DiffFile != "":
		return converter.WriteDiff(cfg.DiffFile, cfg.OutputFile, cfg.Options())
	case cfg.OutputFile != "":
		return converter.WriteFile(cfg.OutputFile, cfg.Options())
	default:
		return converter.Fprint(stdout, cfg.Options())
	}
}

func init() {
	generateConfig.AddFlags(generateCmd.Flags())
	cobra.MarkFlagFilename(generateCmd.Flags(), "out", "js", "mjs", "cjs") // for file completion
	cobra.MarkFlagFilename(generateCmd.Flags(), "diff", "diff", "patch")
	cobra.MarkFlagDirname(generateCmd.Flags(), "path")

	rootCmd.AddCommand(generateCmd)
}
