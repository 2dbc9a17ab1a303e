package generation

import (
	"crypto/sha1" // #nosec G505 // content-addressing only, not authentication
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/parser"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/pkg/textnorm"
)

// hashLength is the number of hex characters kept from the content hash
const hashLength = 12

// hashPayload is the canonical serialization the content hash is computed
// over. Species serializes as null when absent, keeping hashes stable with
// previously generated artifacts.
type hashPayload struct {
	ID      string       `json:"id"`
	Species *string      `json:"species"`
	Entries []wfrp.Entry `json:"entries"`
}

// BuildDataset assembles the ordered entries of one named source into a
// hashed dataset record. A malformed source (row count not divisible by
// five) rejects the whole dataset.
func BuildDataset(sourceName string, rows [][]string) (*wfrp.Dataset, error) {
	id := textnorm.KebabCase(strings.TrimSpace(sourceName))

	groups, err := parser.GroupRows(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "'%s' seems to be an incomplete dataset", id)
	}

	entries := make([]wfrp.Entry, 0, len(groups))
	for _, group := range groups {
		entries = append(entries, BuildEntry(group))
	}

	dataset := &wfrp.Dataset{
		ID:      id,
		Species: speciesFromDatasetID(id),
		Entries: entries,
	}

	hash, err := datasetHash(dataset)
	if err != nil {
		return nil, err
	}
	dataset.Hash = hash

	return dataset, nil
}

// speciesFromDatasetID infers the coarse species category from the dataset
// id; only humans have one today
func speciesFromDatasetID(id string) string {
	if strings.Contains(id, wfrp.SpeciesHuman) {
		return wfrp.SpeciesHuman
	}
	return ""
}

// datasetHash returns the first 12 hex characters of the SHA-1 of the
// dataset's canonical JSON. The hash changes if and only if the normalized
// content changes.
func datasetHash(dataset *wfrp.Dataset) (string, error) {
	payload := hashPayload{
		ID:      dataset.ID,
		Entries: dataset.Entries,
	}
	if dataset.Species != "" {
		payload.Species = &dataset.Species
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize dataset for hashing")
	}

	sum := sha1.Sum(data) // #nosec G401 // content-addressing only
	return hex.EncodeToString(sum[:])[:hashLength], nil
}
