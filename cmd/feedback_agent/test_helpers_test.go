package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTemp writes content to a file in a per-test directory and returns its path.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const cvResponse = "```markdown\n" +
	"## 📊 Score global : 85/100\n\n" +
	"## Analyse par section\n" +
	"- Structure : 90/100\n" +
	"- Compétences : 70/100\n\n" +
	"## Points forts\n" +
	"- Parcours clair\n" +
	"- Résultats chiffrés\n" +
	"```\n"

const letterResponse = "## Score global : 68/100\n" +
	"## Scores par section\n" +
	"- Accroche : 55/100\n" +
	"- Appel à l'action : 40/100\n"
