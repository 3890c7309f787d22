package main

import (
	"fmt"
	"io"
	"os"

	"github.com/XenFolio/cv-ai/internal/corrections"
	"github.com/XenFolio/cv-ai/internal/observability"
	"github.com/XenFolio/cv-ai/schemas"
	"github.com/spf13/cobra"
)

var parseCorrectionsCmd = &cobra.Command{
	Use:   "parse-corrections",
	Short: "Parse a grammar-correction response against the original text",
	Long:  "Parse the correction table of a raw grammar-check response. Spans refer to the original text given with --text.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runParseCorrections(cmd.OutOrStdout(), correctionsInput, correctionsText, correctionsOutput,
			correctionsValidate || cfg.ValidateOutput)
	},
}

var (
	correctionsInput    string
	correctionsText     string
	correctionsOutput   string
	correctionsValidate bool
)

func init() {
	parseCorrectionsCmd.Flags().StringVarP(&correctionsInput, "in", "i", "", "Path to the raw response file, - for stdin")
	parseCorrectionsCmd.Flags().StringVarP(&correctionsText, "text", "t", "", "Path to the original plain text")
	parseCorrectionsCmd.Flags().StringVarP(&correctionsOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	parseCorrectionsCmd.Flags().BoolVar(&correctionsValidate, "validate", false, "Validate the output against its JSON schema")
	_ = parseCorrectionsCmd.MarkFlagRequired("in")
	_ = parseCorrectionsCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(parseCorrectionsCmd)
}

func runParseCorrections(w io.Writer, inPath, textPath, outPath string, validate bool) error {
	if inPath == "-" && textPath == "-" {
		return fmt.Errorf("--in and --text cannot both read stdin")
	}

	raw, err := readInput(inPath)
	if err != nil {
		return err
	}
	original, err := readInput(textPath)
	if err != nil {
		return err
	}

	result := corrections.ParseCorrections(raw, original)
	if err := checkSchema(validate, schemas.CorrectionResult, result); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintCorrections(result)
	}

	return writeJSON(w, outPath, result)
}
