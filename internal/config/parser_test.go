package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tgrgds/sshs/internal/apperr"
	"github.com/tgrgds/sshs/internal/model"
)

func TestParse_KeepsFileOrder(t *testing.T) {
	data := []byte(`[
  { "name": "home-server", "connection": "user@192.168.1.10" },
  { "name": "work-box", "connection": "myalias" },
  { "name": "home-server", "connection": "backup@192.168.1.11" }
]`)
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []model.ConnectionEntry{
		{Name: "home-server", Connection: "user@192.168.1.10"},
		{Name: "work-box", Connection: "myalias"},
		{Name: "home-server", Connection: "backup@192.168.1.11"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("entries mismatch\nwant=%+v\n got=%+v", want, got)
	}
}

func TestParse_EmptyList(t *testing.T) {
	got, err := Parse([]byte("[]"))
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestParse_PassesValuesThroughUninterpreted(t *testing.T) {
	got, err := Parse([]byte(`[{"name":"","connection":"not a host at all","port":22}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "" || got[0].Connection != "not a host at all" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "syntax", input: `[{"name": "a", "connection": "b"`},
		{name: "trailing data", input: `[] []`},
		{name: "not a list", input: `{"name": "a", "connection": "b"}`},
		{name: "null document", input: `null`},
		{name: "empty document", input: ``},
		{name: "missing name", input: `[{"connection": "a@1.2.3.4"}]`},
		{name: "missing connection", input: `[{"name": "A"}]`},
		{name: "null connection", input: `[{"name": "A", "connection": null}]`},
		{name: "null element", input: `[null]`},
		{name: "wrong name type", input: `[{"name": 5, "connection": "a@1.2.3.4"}]`},
		{name: "wrong connection type", input: `[{"name": "A", "connection": ["a"]}]`},
		{name: "second entry bad", input: `[{"name":"A","connection":"a"},{"name":"B"}]`},
		{name: "capitalised name key", input: `[{"Name": "A", "connection": "a@1.2.3.4"}]`},
		{name: "upper-case connection key", input: `[{"name": "A", "CONNECTION": "a@1.2.3.4"}]`},
		{name: "all keys upper-case", input: `[{"NAME": "A", "CONNECTION": "a@1.2.3.4"}]`},
		{name: "duplicate name", input: `[{"name": "A", "name": "B", "connection": "a@1.2.3.4"}]`},
		{name: "duplicate connection", input: `[{"name": "A", "connection": "a", "connection": "b"}]`},
		{name: "element not an object", input: `["a@1.2.3.4"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("expected error, got entries %+v", entries)
			}
			if !errors.Is(err, apperr.Parse) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if entries != nil {
				t.Fatalf("expected no entries on error, got %+v", entries)
			}
		})
	}
}

func TestParse_MissingFieldNamesEntry(t *testing.T) {
	_, err := Parse([]byte(`[{"name":"A","connection":"a"},{"name":"B"}]`))
	if err == nil {
		t.Fatal("expected error")
	}
	want := `entry 1: missing field "connection"`
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}

func TestParse_KeysAreCaseSensitive(t *testing.T) {
	_, err := Parse([]byte(`[{"Name":"A","connection":"a"}]`))
	want := `entry 0: missing field "name"`
	if err == nil || err.Error() != want {
		t.Fatalf("want %q, got %v", want, err)
	}
}

func TestParse_DuplicateFieldNamesEntry(t *testing.T) {
	_, err := Parse([]byte(`[{"name":"A","connection":"a"},{"name":"B","connection":"b","name":"C"}]`))
	want := `entry 1: duplicate field "name"`
	if err == nil || err.Error() != want {
		t.Fatalf("want %q, got %v", want, err)
	}
}

func TestParse_RepeatedExtraKeysIgnored(t *testing.T) {
	got, err := Parse([]byte(`[{"name":"A","port":22,"port":23,"Connection":"x","connection":"a"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "A" || got[0].Connection != "a" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	_, err := Load(path)
	if !errors.Is(err, apperr.FileRead) {
		t.Fatalf("expected FileReadError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected underlying not-exist error, got %v", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, apperr.FileRead) {
		t.Fatalf("expected FileReadError for a directory, got %v", err)
	}
}

func TestLoad_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sshs.json")
	data := []byte("[{\"name\":\"\xff\xfe\",\"connection\":\"a\"}]")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, apperr.FileRead) {
		t.Fatalf("expected FileReadError for invalid UTF-8, got %v", err)
	}
}

func TestLoad_ParseErrorKeepsKindAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sshs.json")
	if err := os.WriteFile(path, []byte(`[{"name":"A"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, apperr.Parse) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if got := err.Error(); got != path+`: entry 0: missing field "connection"` {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestLoad_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sshs.json")
	content := `[{"name":"A","connection":"a@1.2.3.4"},{"name":"B","connection":"b@5.6.7.8"}]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Name != "B" || got[1].Connection != "b@5.6.7.8" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}
