package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/XenFolio/cv-ai/internal/feedback"
	"github.com/XenFolio/cv-ai/internal/llm"
	"github.com/XenFolio/cv-ai/internal/observability"
	"github.com/XenFolio/cv-ai/internal/types"
	"github.com/XenFolio/cv-ai/schemas"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Ask the generator to review a document and print the parsed result",
	Long:  "Render the prompt for --kind, send it to Gemini and parse the response. Requires GEMINI_API_KEY or --api-key.",
	RunE:  runAnalyzeCmd,
}

var (
	analyzeKind     string
	analyzeInput    string
	analyzeOutput   string
	analyzeAPIKey   string
	analyzeValidate bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeKind, "kind", "k", string(feedback.KindCV), "Request kind: cv, letter or corrections")
	analyzeCmd.Flags().StringVarP(&analyzeInput, "in", "i", "", "Path to the document, - for stdin")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Validate the output against its JSON schema")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	kind := feedback.Kind(analyzeKind)
	if _, ok := kind.PromptKey(); !ok {
		return fmt.Errorf("unknown kind %q (want cv, letter or corrections)", analyzeKind)
	}

	apiKey := firstNonEmpty(analyzeAPIKey, cfg.APIKey, os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	jobContext, err := cfg.JobContext()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	svc := feedback.NewService(client, llm.ParseModelTier(cfg.ModelTier))
	return runAnalyze(ctx, cmd.OutOrStdout(), svc, kind, analyzeInput, jobContext, analyzeOutput,
		analyzeValidate || cfg.ValidateOutput)
}

// runAnalyze runs one request flow through svc and writes the parsed record.
func runAnalyze(
	ctx context.Context,
	w io.Writer,
	svc *feedback.Service,
	kind feedback.Kind,
	inPath, jobContext, outPath string,
	validate bool,
) error {
	document, err := readInput(inPath)
	if err != nil {
		return err
	}

	record, err := svc.Run(ctx, kind, document, jobContext)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	var schemaName string
	switch r := record.(type) {
	case *types.CVAnalysis:
		schemaName = schemas.CVAnalysis
		if verbose {
			printer.PrintCVAnalysis(r)
		}
	case *types.LetterAnalysis:
		schemaName = schemas.LetterAnalysis
		if verbose {
			printer.PrintLetterAnalysis(r)
		}
	case *types.CorrectionResult:
		schemaName = schemas.CorrectionResult
		if verbose {
			printer.PrintCorrections(r)
		}
	}

	if err := checkSchema(validate, schemaName, record); err != nil {
		return err
	}
	return writeJSON(w, outPath, record)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
