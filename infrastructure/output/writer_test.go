package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileWriterSaveJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	writer := NewFileWriter(dir)

	payload := map[string]any{"roas_change": "-10.00%"}

	path, err := writer.SaveJSON("insights.json", payload)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "insights.json"), path)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(content), `"roas_change": "-10.00%"`)
}

func TestFileWriterSaveMarkdown(t *testing.T) {
	dir := t.TempDir()
	writer := NewFileWriter(dir)

	path, err := writer.SaveMarkdown("report.md", "# Relatório\n")
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "# Relatório\n", string(content))
}
