package main

import (
	"fmt"
	"io"

	"github.com/XenFolio/cv-ai/internal/feedback"
	"github.com/XenFolio/cv-ai/internal/prompts"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Render the generator prompt for a document",
	Long:  "Render the prompt template that asks the generator for an analysis or a correction table in the layout the parsers expect.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobContext, err := cfg.JobContext()
		if err != nil {
			return err
		}
		return runPrompt(cmd.OutOrStdout(), feedback.Kind(promptKind), promptInput, jobContext)
	},
}

var (
	promptKind  string
	promptInput string
)

func init() {
	promptCmd.Flags().StringVarP(&promptKind, "kind", "k", string(feedback.KindCV), "Request kind: cv, letter or corrections")
	promptCmd.Flags().StringVarP(&promptInput, "in", "i", "", "Path to the document, - for stdin")
	_ = promptCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(promptCmd)
}

func runPrompt(w io.Writer, kind feedback.Kind, inPath, jobContext string) error {
	key, ok := kind.PromptKey()
	if !ok {
		return fmt.Errorf("unknown kind %q (want cv, letter or corrections)", kind)
	}

	document, err := readInput(inPath)
	if err != nil {
		return err
	}

	prompt, err := prompts.Build(key, document, jobContext)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, prompt)
	return err
}
