// Command duckling is the CLI front end for the duckling entity extractor:
// parse text from stdin or an argument, train a classifier table from an
// annotated corpus, or serve the HTTP API. Structured as a
// github.com/spf13/cobra command tree, the same subcommand style as
// opal-lang-opal's CLI and fyrsmithlabs-contextd's ctxd.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/extractly/duckling/internal/xlog"
)

var (
	version = "dev"

	verbose bool
	silent  bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "duckling",
		Short:   "Extract structured entities from free-form text",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			xlog.SetVerbose(verbose)
			xlog.SetSilent(silent)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().BoolVar(&silent, "silent", false, "suppress all logging")

	root.AddCommand(parseCmd())
	root.AddCommand(trainCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the duckling version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(version)
			return nil
		},
	}
}
