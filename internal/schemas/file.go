package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	schemafiles "github.com/XenFolio/cv-ai/schemas"
)

// ValidateFile validates the JSON record at jsonPath against schema, which is either an
// embedded schema name ("cv_analysis.schema.json", or the short "cv", "letter",
// "corrections") or a path to a schema file. An embedded name resolves to the checked-in
// schemas/ directory when one is reachable from the working directory, and to the
// embedded copy otherwise.
func ValidateFile(schema, jsonPath string) error {
	name := embeddedName(schema)
	if name == "" {
		return ValidateJSON(schema, jsonPath)
	}

	if path := ResolveSchemaPath(filepath.Join("schemas", name)); path != "" {
		return ValidateJSON(path, jsonPath)
	}

	data, err := schemafiles.Read(name)
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "embedded schema not found", Cause: err}
	}
	content, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	return ValidateJSONString(string(data), string(content))
}

var shortNames = map[string]string{
	"cv":          schemafiles.CVAnalysis,
	"letter":      schemafiles.LetterAnalysis,
	"corrections": schemafiles.CorrectionResult,
}

// embeddedName returns the embedded schema file schema names, or "" for a path.
func embeddedName(schema string) string {
	if name, ok := shortNames[strings.ToLower(schema)]; ok {
		return name
	}
	if names, err := schemafiles.Names(); err == nil {
		for _, n := range names {
			if schema == n || schema+".schema.json" == n {
				return n
			}
		}
	}
	return ""
}
