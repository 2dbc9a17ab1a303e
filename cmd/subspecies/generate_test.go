package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/config"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

func TestCheckSheetSources(t *testing.T) {
	sources := &config.Sources{
		Output: "dist",
		Sources: []config.SourceSpec{
			{Name: "Bretonnian Humans", Kind: config.SourceKindText, Path: "raw/bretonnian.txt"},
			{Name: "High Elves", Kind: config.SourceKindCSV, Path: "raw/elves.csv"},
		},
	}

	assert.NoError(t, checkSheetSources(sources))
}

func TestCheckSheetSources_RejectsSheetKind(t *testing.T) {
	sources := &config.Sources{
		Output: "dist",
		Sources: []config.SourceSpec{
			{Name: "Imperial Humans", Kind: config.SourceKindSheet, Sheet: "Imperial"},
		},
	}

	err := checkSheetSources(sources)
	require.Error(t, err)
	assert.True(t, errors.IsUnimplemented(err))
	assert.Contains(t, err.Error(), "Imperial Humans")
}
