package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/tgrgds/sshs/internal/apperr"
	"github.com/tgrgds/sshs/internal/util"
)

// HomeFunc resolves the invoking user's home directory.
type HomeFunc func() (string, error)

// UserHome is the HomeFunc backed by the process environment.
var UserHome HomeFunc = os.UserHomeDir

// DefaultPath returns the connection file location under home.
func DefaultPath(home string) string {
	return filepath.Join(home, util.DefaultConfigDir, util.DefaultConfigFile)
}

// Locate returns the connection file to read. A non-nil explicit path always
// wins and is returned verbatim, even when it is empty, in which case reading
// it fails later; home is only consulted when explicit is nil. Existence is
// not checked here.
func Locate(explicit *string, home HomeFunc) (string, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if home == nil {
		return "", apperr.New(apperr.HomeDirectoryUnresolved, "no home directory", errors.New("home resolver not configured"))
	}
	dir, err := home()
	if err != nil {
		return "", apperr.New(apperr.HomeDirectoryUnresolved, "no home directory; pass --file to choose a connection file", err)
	}
	if strings.TrimSpace(dir) == "" {
		return "", apperr.New(apperr.HomeDirectoryUnresolved, "no home directory; pass --file to choose a connection file", nil)
	}
	return DefaultPath(dir), nil
}
