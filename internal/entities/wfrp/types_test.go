package wfrp_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
)

func TestTalentListUnmarshal(t *testing.T) {
	t.Run("string talents", func(t *testing.T) {
		var talents wfrp.TalentList
		err := json.Unmarshal([]byte(`["Rover", "Marksman, Savvy"]`), &talents)

		require.NoError(t, err)
		assert.Equal(t, wfrp.TalentList{"Rover", "Marksman, Savvy"}, talents)
	})

	t.Run("legacy numeric random talents", func(t *testing.T) {
		var talents wfrp.TalentList
		err := json.Unmarshal([]byte(`["Rover", 3, 1]`), &talents)

		require.NoError(t, err)
		assert.Equal(t, wfrp.TalentList{"Rover", "random[3]", "random[1]"}, talents)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var talents wfrp.TalentList
		err := json.Unmarshal([]byte(`[{"name": "Rover"}]`), &talents)

		assert.Error(t, err)
	})
}

func TestRandomTalent(t *testing.T) {
	assert.Equal(t, "random[1]", wfrp.RandomTalent(1))
	assert.Equal(t, "random[3]", wfrp.RandomTalent(3))
}

func TestDatasetFilename(t *testing.T) {
	dataset := &wfrp.Dataset{ID: "more-humans", Hash: "1a2b3c4d5e6f"}
	assert.Equal(t, "more-humans-1a2b3c4d5e6f", dataset.Filename())
}

func TestManifestFind(t *testing.T) {
	manifest := &wfrp.Manifest{
		Entries: []wfrp.ManifestEntry{
			{ID: "more-humans", Hash: "aaaaaaaaaaaa", Filename: "more-humans-aaaaaaaaaaaa"},
			{ID: "more-dwarfs", Hash: "bbbbbbbbbbbb", Filename: "more-dwarfs-bbbbbbbbbbbb"},
		},
	}

	entry := manifest.Find("more-dwarfs")
	require.NotNil(t, entry)
	assert.Equal(t, "more-dwarfs-bbbbbbbbbbbb", entry.Filename)

	assert.Nil(t, manifest.Find("more-elves"))
}

func TestSpeciesConfigClone(t *testing.T) {
	original := wfrp.SpeciesConfig{
		"human": {
			"human_reiklander": {
				Name:    "Reiklander",
				Skills:  []string{"Cool", "Gossip"},
				Talents: wfrp.TalentList{"Doomed", "random[3]"},
			},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutating the clone must not leak into the original
	clone["human"]["human_reiklander"].Skills[0] = "Charm"
	clone["human"]["human_nordlander"] = wfrp.Subspecies{Name: "Nordlander"}

	assert.Equal(t, "Cool", original["human"]["human_reiklander"].Skills[0])
	assert.NotContains(t, original["human"], "human_nordlander")
}

func TestEntryClone(t *testing.T) {
	entry := wfrp.Entry{
		ID:      "ms_artoin",
		Name:    "*Artoin",
		Skills:  []string{"Cool"},
		Talents: wfrp.TalentList{"Rover"},
	}

	clone := entry.Clone()
	clone.Skills[0] = "Charm"
	clone.Talents[0] = "Doomed"

	assert.Equal(t, "Cool", entry.Skills[0])
	assert.Equal(t, wfrp.TalentList{"Rover"}, entry.Talents)
}
