package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/XenFolio/cv-ai/internal/schemas"
)

// readInput reads a file, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = w.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// checkSchema validates v against an embedded schema when enabled.
func checkSchema(enabled bool, schemaName string, v any) error {
	if !enabled {
		return nil
	}
	if err := schemas.ValidateDocument(schemaName, v); err != nil {
		return fmt.Errorf("output does not match %s: %w", schemaName, err)
	}
	return nil
}
