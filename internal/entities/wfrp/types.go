// Package wfrp implements the WFRP4e subspecies entities
package wfrp

// Entry represents one homebrew subspecies record.
// NOTE: This is a data-only struct. All parsing and normalization is done
// by the generation orchestrator, not here.
type Entry struct {
	// ID is a stable slug derived from Name (same name, same id)
	ID string `json:"id"`
	// Name is the display name, prefixed with the homebrew marker glyph
	Name string `json:"name"`
	// Skills is sorted and duplicate-free
	Skills []string `json:"skills"`
	// Talents preserves source order and may repeat
	Talents TalentList `json:"talents"`
}

// Clone returns an independent copy of the entry
func (e Entry) Clone() Entry {
	out := Entry{
		ID:   e.ID,
		Name: e.Name,
	}
	if e.Skills != nil {
		out.Skills = append([]string(nil), e.Skills...)
	}
	if e.Talents != nil {
		out.Talents = append(TalentList(nil), e.Talents...)
	}
	return out
}

// Dataset is one generated, hashed bundle of entries from a single source
type Dataset struct {
	ID string `json:"id"`
	// Hash is the first 12 hex characters of the content hash
	Hash string `json:"hash,omitempty"`
	// Species is the inferred species category, empty when unknown
	Species string `json:"species,omitempty"`
	Entries []Entry `json:"entries"`
}

// Filename returns the content-addressed artifact base name, without extension
func (d *Dataset) Filename() string {
	return d.ID + "-" + d.Hash
}

// ManifestEntry indexes one generated dataset
type ManifestEntry struct {
	ID       string `json:"id"`
	Hash     string `json:"hash"`
	Filename string `json:"filename"`
}

// Manifest indexes all generated datasets, in generation order
type Manifest struct {
	Entries []ManifestEntry `json:"entries"`
}

// Find returns the manifest entry for a dataset id, or nil
func (m *Manifest) Find(id string) *ManifestEntry {
	for i := range m.Entries {
		if m.Entries[i].ID == id {
			return &m.Entries[i]
		}
	}
	return nil
}

// Subspecies is the host-facing shape of one subspecies record, keyed by
// subspecies id inside SpeciesConfig (the id lives on the key, not here)
type Subspecies struct {
	Name    string     `json:"name"`
	Skills  []string   `json:"skills"`
	Talents TalentList `json:"talents"`
}

// SpeciesConfig is the host configuration shape: species id to subspecies id
// to subspecies data
type SpeciesConfig map[string]map[string]Subspecies

// Clone returns a deep copy, safe to hold across host mutations
func (c SpeciesConfig) Clone() SpeciesConfig {
	if c == nil {
		return nil
	}
	out := make(SpeciesConfig, len(c))
	for speciesID, subspecies := range c {
		cloned := make(map[string]Subspecies, len(subspecies))
		for id, data := range subspecies {
			entry := Subspecies{Name: data.Name}
			if data.Skills != nil {
				entry.Skills = append([]string(nil), data.Skills...)
			}
			if data.Talents != nil {
				entry.Talents = append(TalentList(nil), data.Talents...)
			}
			cloned[id] = entry
		}
		out[speciesID] = cloned
	}
	return out
}

// Collection is the runtime pivot structure: species id to ordered entries
type Collection map[string][]Entry
