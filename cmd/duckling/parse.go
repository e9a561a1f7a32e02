package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/extractly/duckling"
	"github.com/extractly/duckling/internal/config"
	"github.com/extractly/duckling/internal/docload"
	"github.com/extractly/duckling/internal/xlog"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/rank"
	"github.com/extractly/duckling/token"
)

func parseCmd() *cobra.Command {
	var (
		lang           string
		region         string
		refTimeStr     string
		dims           []string
		withLatent     bool
		file           string
		configPath     string
		classifierFile string
	)

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse text and print the extracted entities as a JSON array",
		Long: `parse extracts structured entities from free-form text: numbers,
ordinals, durations, dates and times, money, measurements, phone numbers,
URLs, emails and credit card numbers.

Text comes from the positional argument, --file, or stdin (in that order
of precedence). Exit code 0 on any successful parse, including an empty
result; non-zero only on a locale/config error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if classifierFile == "" {
				classifierFile = cfg.ClassifierFile
			}
			if classifierFile != "" {
				// LoadFile logs a failure; the current table then stays in use.
				if c, err := rank.LoadFile(classifierFile); err == nil {
					rank.SetOverride(c)
				}
			}

			text, closeText, err := readText(file, args)
			if err != nil {
				return err
			}
			defer func() { _ = closeText() }()

			refTime := time.Now().UTC()
			if refTimeStr != "" {
				refTime, err = time.Parse(time.RFC3339, refTimeStr)
				if err != nil {
					return fmt.Errorf("parsing --ref-time: %w", err)
				}
			}

			effectiveDims := dims
			if len(effectiveDims) == 0 {
				effectiveDims = cfg.EnabledDims(lang)
			}
			parsedDims := make([]token.Dimension, len(effectiveDims))
			for i, d := range effectiveDims {
				parsedDims[i] = token.Dimension(d)
			}

			loc := locale.Locale{Lang: lang, Region: region}
			entities := duckling.Parse(text, loc, parsedDims, refTime, duckling.Options{WithLatent: withLatent})
			out, err := json.Marshal(toSlice(entities))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "language tag (e.g. en)")
	cmd.Flags().StringVar(&region, "region", "", "region refinement (e.g. US)")
	cmd.Flags().StringVar(&refTimeStr, "ref-time", "", "reference time in RFC3339, defaults to now")
	cmd.Flags().StringArrayVar(&dims, "dim", nil, "restrict to this dimension (repeatable); default is every supported dimension")
	cmd.Flags().BoolVar(&withLatent, "with-latent", false, "keep latent (weakly matched) tokens")
	cmd.Flags().StringVar(&file, "file", "", "read text from this file (mmapped when possible) instead of stdin/argument")
	cmd.Flags().StringVar(&configPath, "config", "", "path to an engine config YAML file")
	cmd.Flags().StringVar(&classifierFile, "classifier-file", "", "override the embedded classifier table")

	return cmd
}

func readText(file string, args []string) (string, func() error, error) {
	if len(args) > 0 {
		return args[0], func() error { return nil }, nil
	}
	if file != "" {
		return docload.File(file)
	}
	xlog.Info("reading text from stdin")
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", nil, err
	}
	return string(data), func() error { return nil }, nil
}

// toSlice never returns a nil slice, so an empty parse marshals to "[]"
// instead of "null".
func toSlice[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
