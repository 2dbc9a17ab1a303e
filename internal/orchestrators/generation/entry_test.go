package generation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/orchestrators/generation"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/parser"
)

func TestBuildEntry(t *testing.T) {
	entry := generation.BuildEntry(parser.Group{
		Name:    "Bretonnian",
		Skills:  "Endurance, Animal Care, Cool",
		Talents: "Noble Blood or Beneath Notice, 3 Random Talents",
	})

	assert.Equal(t, "ms_bretonnian", entry.ID)
	assert.Equal(t, "*Bretonnian", entry.Name)
	assert.Equal(t, []string{"Animal Care", "Cool", "Endurance"}, entry.Skills)
	assert.Equal(t, wfrp.TalentList{"Noble Blood, Beneath Notice", "random[3]"}, entry.Talents)
}

func TestBuildEntry_NameInflection(t *testing.T) {
	entry := generation.BuildEntry(parser.Group{Name: "Artois"})

	assert.Equal(t, "ms_artoin", entry.ID)
	assert.Equal(t, "*Artoin", entry.Name)
}

func TestBuildEntry_ApostropheName(t *testing.T) {
	entry := generation.BuildEntry(parser.Group{Name: "L'Anguille"})

	// The id slug drops the apostrophe, the display name keeps it
	assert.Equal(t, "ms_languillian", entry.ID)
	assert.Equal(t, "*L'Anguillian", entry.Name)
}

func TestBuildEntry_SkillsDeduplicatedAndSorted(t *testing.T) {
	entry := generation.BuildEntry(parser.Group{
		Name:   "Bretonnian",
		Skills: "cool, Charm, COOL, charm (choose one)",
	})

	assert.Equal(t, []string{"Charm", "Charm (Any)", "Cool"}, entry.Skills)
}

func TestBuildEntry_TalentsKeepSourceOrderAndDuplicates(t *testing.T) {
	entry := generation.BuildEntry(parser.Group{
		Name:    "Bretonnian",
		Talents: "Savvy, Suave, Savvy",
	})

	assert.Equal(t, wfrp.TalentList{"Savvy", "Suave", "Savvy"}, entry.Talents)
}

func TestBuildEntry_TalentAlternatives(t *testing.T) {
	entry := generation.BuildEntry(parser.Group{
		Name:    "Bretonnian",
		Talents: "doomed OR luck or random, Hardy",
	})

	assert.Equal(t, wfrp.TalentList{"Doomed, Luck, random[1]", "Hardy"}, entry.Talents)
}

func TestBuildEntry_RandomTalentValues(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Random", want: "random[1]"},
		{raw: "A random talent", want: "A Random Talent"},
		{raw: "2 Random", want: "random[2]"},
		{raw: "3 additional random talents", want: "random[3]"},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			entry := generation.BuildEntry(parser.Group{Name: "Bretonnian", Talents: tc.raw})
			assert.Equal(t, wfrp.TalentList{tc.want}, entry.Talents)
		})
	}
}

func TestBuildEntry_EmptySections(t *testing.T) {
	entry := generation.BuildEntry(parser.Group{Name: "Bretonnian"})

	assert.Empty(t, entry.Skills)
	assert.Empty(t, entry.Talents)
	assert.NotNil(t, entry.Skills)
	assert.NotNil(t, entry.Talents)
}
