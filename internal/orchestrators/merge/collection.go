package merge

import (
	"sort"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
)

// flattenConfig pivots the host's nested configuration into per-species
// entry lists. Entries within a species are ordered by id so the pivot is
// deterministic regardless of map iteration order.
func flattenConfig(cfg wfrp.SpeciesConfig) wfrp.Collection {
	collection := make(wfrp.Collection, len(cfg))
	for speciesID, subspecies := range cfg {
		ids := make([]string, 0, len(subspecies))
		for id := range subspecies {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		entries := make([]wfrp.Entry, 0, len(ids))
		for _, id := range ids {
			data := subspecies[id]
			entries = append(entries, wfrp.Entry{
				ID:      id,
				Name:    data.Name,
				Skills:  data.Skills,
				Talents: data.Talents,
			})
		}
		collection[speciesID] = entries
	}
	return collection
}

// flattenDatasets pivots custom datasets into per-species entry lists,
// preserving each dataset's entry order. Datasets without a declared
// species have no place in the host configuration and are dropped.
func flattenDatasets(datasets []*wfrp.Dataset) wfrp.Collection {
	collection := make(wfrp.Collection)
	for _, d := range datasets {
		if d == nil || d.Species == "" {
			continue
		}
		collection[d.Species] = append(collection[d.Species], d.Entries...)
	}
	return collection
}

// entryCount is the total number of entries across all species
func entryCount(c wfrp.Collection) int {
	count := 0
	for _, entries := range c {
		count += len(entries)
	}
	return count
}

// speciesUnion returns the sorted set of species present in either collection
func speciesUnion(a, b wfrp.Collection) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for speciesID := range a {
		seen[speciesID] = struct{}{}
	}
	for speciesID := range b {
		seen[speciesID] = struct{}{}
	}

	union := make([]string, 0, len(seen))
	for speciesID := range seen {
		union = append(union, speciesID)
	}
	sort.Strings(union)
	return union
}

// mergeCollections combines the baseline and custom collections into the
// host configuration shape. Per species the baseline entries come first
// (or not at all, when replaceRaw is set), followed by the custom entries,
// with the combined list ordered by display name.
func mergeCollections(raw, custom wfrp.Collection, replaceRaw bool) wfrp.SpeciesConfig {
	merged := make(wfrp.SpeciesConfig)

	for _, speciesID := range speciesUnion(raw, custom) {
		var entries []wfrp.Entry
		if !replaceRaw {
			entries = append(entries, raw[speciesID]...)
		}
		entries = append(entries, custom[speciesID]...)

		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})

		// The host mutates its configuration in place; handing it the
		// baseline's backing arrays would let that leak into the stored
		// RAW snapshot
		subspecies := make(map[string]wfrp.Subspecies, len(entries))
		for _, entry := range entries {
			cloned := entry.Clone()
			subspecies[cloned.ID] = wfrp.Subspecies{
				Name:    cloned.Name,
				Skills:  cloned.Skills,
				Talents: cloned.Talents,
			}
		}
		merged[speciesID] = subspecies
	}

	return merged
}
