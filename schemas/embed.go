// Package schemas embeds the JSON Schemas of every record the parsers produce.
package schemas

import (
	"embed"
	"io/fs"
)

//go:embed *.schema.json
var files embed.FS

// Schema file names
const (
	CVAnalysis       = "cv_analysis.schema.json"
	LetterAnalysis   = "letter_analysis.schema.json"
	CorrectionResult = "correction_result.schema.json"
)

// Read returns the content of an embedded schema file.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// Names lists the embedded schema files.
func Names() ([]string, error) {
	return fs.Glob(files, "*.schema.json")
}
