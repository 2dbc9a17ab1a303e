package generation

import (
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
)

// BuildManifest projects the generated datasets into the index consumed by
// the runtime loader, preserving generation order
func BuildManifest(datasets []*wfrp.Dataset) *wfrp.Manifest {
	entries := make([]wfrp.ManifestEntry, 0, len(datasets))
	for _, dataset := range datasets {
		entries = append(entries, wfrp.ManifestEntry{
			ID:       dataset.ID,
			Hash:     dataset.Hash,
			Filename: dataset.Filename(),
		})
	}
	return &wfrp.Manifest{Entries: entries}
}
