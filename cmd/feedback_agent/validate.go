package main

import (
	"fmt"
	"io"

	"github.com/XenFolio/cv-ai/internal/schemas"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON record against a schema",
	Long: `Validate a JSON record, such as one written by parse-cv --out, against a JSON Schema.
--schema takes cv, letter, corrections, an embedded schema file name, or a path to a schema file.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runValidate(cmd.OutOrStdout(), validateSchema, validateInput)
	},
}

var (
	validateSchema string
	validateInput  string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Schema: cv, letter, corrections, or a schema file path")
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to the JSON record")
	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(w io.Writer, schema, inPath string) error {
	if err := schemas.ValidateFile(schema, inPath); err != nil {
		return fmt.Errorf("%s does not match %s: %w", inPath, schema, err)
	}

	log.Debug().Str("schema", schema).Str("file", inPath).Msg("Record matches schema")
	_, err := fmt.Fprintf(w, "%s: valid\n", inPath)
	return err
}
