// Package config reads the sshs connection file.
//
// The file is a JSON array of objects, each with a "name" (the label shown in
// the picker) and a "connection" (the argument handed to ssh):
//
//	[
//	  { "name": "home-server", "connection": "user@192.168.1.10" },
//	  { "name": "work-box",    "connection": "myalias" }
//	]
//
// Order is significant: entries are shown in file order and the picker
// reports a position, not a name, so duplicate names are allowed. Neither
// value is interpreted here; an empty name or a connection that is not a
// host is passed through as-is.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/tgrgds/sshs/internal/apperr"
	"github.com/tgrgds/sshs/internal/model"
)

const (
	fieldName       = "name"
	fieldConnection = "connection"
)

// Load reads the connection file at path and parses it.
//
// Failing to read the file, or reading bytes that are not UTF-8, is a
// FileRead error. Anything Parse rejects comes back as a Parse error prefixed
// with path, so the message says which file was wrong:
//
//	/home/alice/.ssh/sshs.json: entry 2: missing field "connection"
func Load(path string) ([]model.ConnectionEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Newf(apperr.FileRead, err, "read %s", path)
	}
	if !utf8.Valid(b) {
		return nil, apperr.Newf(apperr.FileRead, errors.New("file is not valid UTF-8"), "read %s", path)
	}
	entries, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Parse decodes a JSON list of {"name", "connection"} objects, keeping file
// order. An empty list is valid and yields an empty, non-nil slice.
//
// Each element must be an object holding both keys as strings. Keys are
// matched exactly in lower case and may appear only once. Extra keys are
// ignored. These are Parse errors:
//   - a document that is null or not an array;
//   - an element that is not an object;
//   - a missing or null field, or one holding another JSON type;
//   - a field repeated within one element.
//
// Element errors name the zero-based index:
//
//	Parse([]byte(`[{"name":"A","connection":"a@1.2.3.4"}]`))  → [{A a@1.2.3.4}]
//	Parse([]byte(`[{"Name":"A","connection":"a@1.2.3.4"}]`))  → entry 0: missing field "name"
//	Parse([]byte(`[{"name":"A","name":"B","connection":"b"}]`)) → entry 0: duplicate field "name"
//
// Keys are matched by hand rather than through struct tags because
// encoding/json folds case when matching tags and keeps the last of
// repeated keys.
func Parse(data []byte) ([]model.ConnectionEntry, error) {
	var raw *[]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperr.New(apperr.Parse, "invalid connection list", err)
	}
	if raw == nil {
		return nil, apperr.New(apperr.Parse, "invalid connection list", errors.New("expected a JSON array, got null"))
	}

	entries := make([]model.ConnectionEntry, 0, len(*raw))
	for i, elem := range *raw {
		entry, err := decodeEntry(i, elem)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// decodeEntry walks one element's keys in order so repeated keys are seen.
// The element has already been checked for syntax by the outer Unmarshal.
func decodeEntry(i int, elem json.RawMessage) (model.ConnectionEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(elem))
	tok, err := dec.Token()
	if err != nil {
		return model.ConnectionEntry{}, apperr.Newf(apperr.Parse, err, "entry %d", i)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return model.ConnectionEntry{}, apperr.Newf(apperr.Parse, nil, "entry %d: expected an object", i)
	}

	fields := make(map[string]json.RawMessage, 2)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return model.ConnectionEntry{}, apperr.Newf(apperr.Parse, err, "entry %d", i)
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return model.ConnectionEntry{}, apperr.Newf(apperr.Parse, err, "entry %d: field %q", i, key)
		}
		if key != fieldName && key != fieldConnection {
			continue
		}
		if _, dup := fields[key]; dup {
			return model.ConnectionEntry{}, apperr.Newf(apperr.Parse, nil, "entry %d: duplicate field %q", i, key)
		}
		fields[key] = value
	}

	name, err := stringField(i, fields, fieldName)
	if err != nil {
		return model.ConnectionEntry{}, err
	}
	conn, err := stringField(i, fields, fieldConnection)
	if err != nil {
		return model.ConnectionEntry{}, err
	}
	return model.ConnectionEntry{Name: name, Connection: conn}, nil
}

func stringField(i int, fields map[string]json.RawMessage, key string) (string, error) {
	value, ok := fields[key]
	if !ok {
		return "", apperr.Newf(apperr.Parse, nil, "entry %d: missing field %q", i, key)
	}
	var s *string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", apperr.Newf(apperr.Parse, err, "entry %d: field %q must be a string", i, key)
	}
	if s == nil {
		return "", apperr.Newf(apperr.Parse, nil, "entry %d: field %q is null", i, key)
	}
	return *s, nil
}
