package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsgen",
	Short: "jsgen generates JavaScript from the declarations of Go packages",
	Long:  "jsgen converts the package level constants and variables of Go packages into a JavaScript script",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
