package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/XenFolio/cv-ai/internal/observability"
	"github.com/XenFolio/cv-ai/internal/parsing"
	"github.com/XenFolio/cv-ai/internal/types"
	"github.com/XenFolio/cv-ai/schemas"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var parseCVCmd = &cobra.Command{
	Use:   "parse-cv",
	Short: "Parse CV analysis responses into JSON envelopes",
	Long:  "Parse one or more raw CV analysis responses. Several --in files are parsed concurrently and printed as a JSON array in input order.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runParseAnalysis(cmd.OutOrStdout(), parseInputs, parseOutputFile, parseValidate || cfg.ValidateOutput,
			schemas.CVAnalysis, parsing.ParseCVAnalysis, observability.NewPrinter(os.Stderr).PrintCVAnalysis)
	},
}

var parseLetterCmd = &cobra.Command{
	Use:   "parse-letter",
	Short: "Parse cover-letter analysis responses into JSON envelopes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runParseAnalysis(cmd.OutOrStdout(), parseInputs, parseOutputFile, parseValidate || cfg.ValidateOutput,
			schemas.LetterAnalysis, parsing.ParseLetterAnalysis, observability.NewPrinter(os.Stderr).PrintLetterAnalysis)
	},
}

var (
	parseInputs     []string
	parseOutputFile string
	parseValidate   bool
)

func init() {
	for _, c := range []*cobra.Command{parseCVCmd, parseLetterCmd} {
		c.Flags().StringSliceVarP(&parseInputs, "in", "i", nil, "Path to a raw response file, - for stdin (repeatable)")
		c.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
		c.Flags().BoolVar(&parseValidate, "validate", false, "Validate the output against its JSON schema")
		_ = c.MarkFlagRequired("in")
		rootCmd.AddCommand(c)
	}
}

// runParseAnalysis parses every input with parse. A single input is written as one object,
// several as an array.
func runParseAnalysis[S types.Sections](
	w io.Writer,
	inputs []string,
	outPath string,
	validate bool,
	schemaName string,
	parse func(string) *types.AnalysisEnvelope[S],
	summarize func(*types.AnalysisEnvelope[S]),
) error {
	if len(inputs) == 0 {
		return fmt.Errorf("at least one --in file is required")
	}

	results := make([]*types.AnalysisEnvelope[S], len(inputs))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range inputs {
		g.Go(func() error {
			raw, err := readInput(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = parse(raw)
			log.Debug().Str("file", path).Int("overall_score", results[i].OverallScore).Msg("parsed analysis")

			if err := checkSchema(validate, schemaName, results[i]); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if verbose && summarize != nil {
		for _, r := range results {
			summarize(r)
		}
	}

	if len(results) == 1 {
		return writeJSON(w, outPath, results[0])
	}
	return writeJSON(w, outPath, results)
}
