package config

import (
	"encoding/json"

	"github.com/tgrgds/sshs/internal/model"
)

// Marshal encodes entries in the sshs.json shape: an indented array of
// {"name", "connection"} objects. Parse(Marshal(x)) reproduces x.
func Marshal(entries []model.ConnectionEntry) ([]byte, error) {
	if entries == nil {
		entries = []model.ConnectionEntry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
