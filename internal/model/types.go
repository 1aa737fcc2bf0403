package model

import "github.com/samber/lo"

// ConnectionEntry is one named SSH target from sshs.json.
//
// Connection is opaque: it is handed to ssh verbatim, so it may be user@host,
// a bare hostname, or an alias from ~/.ssh/config.
type ConnectionEntry struct {
	Name       string `json:"name"`
	Connection string `json:"connection"`
}

// Labels returns the display label of each entry, in entry order.
func Labels(entries []ConnectionEntry) []string {
	return lo.Map(entries, func(e ConnectionEntry, _ int) string {
		return e.Name
	})
}

// At returns the entry at position i. Lookup is positional because names are
// not required to be unique.
func At(entries []ConnectionEntry, i int) (ConnectionEntry, bool) {
	if i < 0 || i >= len(entries) {
		return ConnectionEntry{}, false
	}
	return entries[i], true
}
