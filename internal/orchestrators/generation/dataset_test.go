package generation_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/orchestrators/generation"
)

// entryRows builds the five-row cadence for one entry, padded with a leading
// empty column the way spreadsheet exports arrive
func entryRows(name, skills, talents string) [][]string {
	return [][]string{
		{"", "• " + name + " •"},
		{"", "Skills"},
		{"", skills},
		{"", "Talents"},
		{"", talents},
	}
}

func TestBuildDataset(t *testing.T) {
	rows := entryRows("Bretonnian", "Animal Care, Cool, Endurance", "Noble Blood or Beneath Notice, 3 Random Talents")

	dataset, err := generation.BuildDataset("Imperial Humans", rows)
	require.NoError(t, err)

	assert.Equal(t, "imperial-humans", dataset.ID)
	assert.Equal(t, wfrp.SpeciesHuman, dataset.Species)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{12}$`), dataset.Hash)
	assert.Equal(t, "imperial-humans-"+dataset.Hash, dataset.Filename())

	require.Len(t, dataset.Entries, 1)
	entry := dataset.Entries[0]
	assert.Equal(t, "ms_bretonnian", entry.ID)
	assert.Equal(t, "*Bretonnian", entry.Name)
	assert.Equal(t, []string{"Animal Care", "Cool", "Endurance"}, entry.Skills)
	assert.Equal(t, wfrp.TalentList{"Noble Blood, Beneath Notice", "random[3]"}, entry.Talents)
}

func TestBuildDataset_NoSpeciesForNonHumans(t *testing.T) {
	rows := entryRows("Caledor", "Cool", "Luck")

	dataset, err := generation.BuildDataset("High Elves", rows)
	require.NoError(t, err)

	assert.Equal(t, "high-elves", dataset.ID)
	assert.Empty(t, dataset.Species)
}

func TestBuildDataset_MultipleEntriesKeepSourceOrder(t *testing.T) {
	rows := entryRows("Middenland", "Cool", "Luck")
	rows = append(rows, entryRows("Averland", "Charm", "Suave")...)

	dataset, err := generation.BuildDataset("imperial humans", rows)
	require.NoError(t, err)

	require.Len(t, dataset.Entries, 2)
	assert.Equal(t, "*Middenlander", dataset.Entries[0].Name)
	assert.Equal(t, "*Averlander", dataset.Entries[1].Name)
}

func TestBuildDataset_IncompleteRows(t *testing.T) {
	rows := entryRows("Bretonnian", "Cool", "Luck")[:4]

	_, err := generation.BuildDataset("Bretonnian Humans", rows)
	require.Error(t, err)

	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Contains(t, err.Error(), "'bretonnian-humans' seems to be an incomplete dataset")
}

func TestBuildDataset_HashIsStable(t *testing.T) {
	rows := entryRows("Bretonnian", "Animal Care, Cool", "Luck")

	first, err := generation.BuildDataset("Bretonnian Humans", rows)
	require.NoError(t, err)

	second, err := generation.BuildDataset("Bretonnian Humans", rows)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
}

func TestBuildDataset_HashTracksContent(t *testing.T) {
	base, err := generation.BuildDataset("Bretonnian Humans", entryRows("Bretonnian", "Animal Care, Cool", "Luck"))
	require.NoError(t, err)

	changedSkills, err := generation.BuildDataset("Bretonnian Humans", entryRows("Bretonnian", "Animal Care, Charm", "Luck"))
	require.NoError(t, err)
	assert.NotEqual(t, base.Hash, changedSkills.Hash)

	changedName, err := generation.BuildDataset("Court Humans", entryRows("Bretonnian", "Animal Care, Cool", "Luck"))
	require.NoError(t, err)
	assert.NotEqual(t, base.Hash, changedName.Hash)
}

func TestBuildManifest(t *testing.T) {
	datasets := []*wfrp.Dataset{
		{ID: "imperial-humans", Hash: "aaaabbbbcccc"},
		{ID: "high-elves", Hash: "ddddeeeeffff"},
	}

	manifest := generation.BuildManifest(datasets)

	require.Len(t, manifest.Entries, 2)
	assert.Equal(t, wfrp.ManifestEntry{
		ID:       "imperial-humans",
		Hash:     "aaaabbbbcccc",
		Filename: "imperial-humans-aaaabbbbcccc",
	}, manifest.Entries[0])
	assert.Equal(t, "high-elves", manifest.Entries[1].ID)
}
