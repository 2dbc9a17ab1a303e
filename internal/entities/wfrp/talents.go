package wfrp

import (
	"encoding/json"
	"fmt"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

// TalentList is an ordered list of talent descriptors. Each descriptor is a
// normalized talent name, a comma-joined disjunction of alternatives, or the
// RandomTalent sentinel.
type TalentList []string

// RandomTalent encodes "roll N random talents" as a talent descriptor
func RandomTalent(n int) string {
	return fmt.Sprintf("random[%d]", n)
}

// UnmarshalJSON accepts both the current string encoding and the legacy one,
// where a standalone random-talent count was written as a bare number.
func (t *TalentList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make([]string, 0, len(raw))
	for i, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}

		var n int
		if err := json.Unmarshal(item, &n); err == nil {
			out = append(out, RandomTalent(n))
			continue
		}

		return errors.InvalidArgumentf("talent %d is neither a string nor a number", i)
	}

	*t = out
	return nil
}
