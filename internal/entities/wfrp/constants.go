package wfrp

// Species identifiers used by the WFRP4e host configuration
const (
	SpeciesHuman = "human"
)

// EntryIDPrefix namespaces generated entry ids to avoid colliding with RAW
// subspecies ids
const EntryIDPrefix = "ms_"

// MarkerGlyph prefixes homebrew display names so they stand out from RAW
// entries in the host UI
const MarkerGlyph = "*"
