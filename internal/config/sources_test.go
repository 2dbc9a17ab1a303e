package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/config"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSources(t *testing.T) {
	path := writeSourcesFile(t, `
output: dist
sources:
  - name: Bretonnian Humans
    kind: text
    path: raw/bretonnian.txt
  - name: High Elves
    kind: csv
    path: raw/elves.csv
  - name: Imperial Humans
    kind: sheet
    sheet: Imperial
`)

	sources, err := config.LoadSources(path)
	require.NoError(t, err)

	assert.Equal(t, "dist", sources.Output)
	require.Len(t, sources.Sources, 3)
	assert.Equal(t, config.SourceKindText, sources.Sources[0].Kind)
	assert.Equal(t, "Imperial", sources.Sources[2].Sheet)
}

func TestLoadSources_MissingFile(t *testing.T) {
	_, err := config.LoadSources(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadSources_MalformedYAML(t *testing.T) {
	path := writeSourcesFile(t, "output: [unclosed")

	_, err := config.LoadSources(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadSources_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing output",
			content: "sources:\n  - name: A\n    kind: text\n    path: a.txt\n",
		},
		{
			name:    "no sources",
			content: "output: dist\n",
		},
		{
			name:    "unknown kind",
			content: "output: dist\nsources:\n  - name: A\n    kind: xml\n    path: a.xml\n",
		},
		{
			name:    "text without path",
			content: "output: dist\nsources:\n  - name: A\n    kind: text\n",
		},
		{
			name:    "nameless source",
			content: "output: dist\nsources:\n  - kind: text\n    path: a.txt\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSourcesFile(t, tc.content)

			_, err := config.LoadSources(path)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
