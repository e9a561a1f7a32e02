package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/extractly/duckling/corpus"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/rank"
	"github.com/extractly/duckling/rank/train"
	"github.com/extractly/duckling/token"
)

func trainCmd() *cobra.Command {
	var (
		lang    string
		dims    []string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "train <corpus-file>",
		Short: "Train a classifier table from an annotated corpus and write it as JSON",
		Long: `train parses every example in corpus-file with the requested locale's
rule set, splits the resulting nodes into ok/ko evidence per the example's
predicate, and fits a per-rule naive-Bayes classifier from the result
(spec.md §4.7). The output JSON is in the same shape ForLocale/LoadFile
consume.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading corpus: %w", err)
			}

			c, err := corpus.Parse(string(data))
			if err != nil {
				return err
			}

			parsedDims := make([]token.Dimension, len(dims))
			for i, d := range dims {
				parsedDims[i] = token.Dimension(d)
			}

			loc := locale.Locale{Lang: lang}
			rules := locale.Rules(loc, parsedDims)
			classifiers := train.MakeClassifiers(rules, c, parsedDims)

			out, err := rank.Marshal(classifiers)
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			return os.WriteFile(outPath, out, 0o644)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "language tag the corpus was annotated under")
	cmd.Flags().StringArrayVar(&dims, "dim", nil, "restrict training to this dimension (repeatable); default is every supported dimension")
	cmd.Flags().StringVar(&outPath, "out", "", "write the classifier JSON here instead of stdout")

	return cmd
}
