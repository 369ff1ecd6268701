package image

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/iotd/pkg/domain"
)

// DefaultName is the file name used inside the temp directory
const DefaultName = "nasa-iotd.jpg"

// Store writes the image to a single fixed file, overwritten on every save.
// Not safe for concurrent saves, the supervisor never runs cycles concurrently.
type Store struct {
	path string
}

// NewStore makes a Store for dir/name. Empty dir means os.TempDir(), empty name means DefaultName.
func NewStore(dir, name string) *Store {
	if dir == "" {
		dir = os.TempDir()
	}
	if name == "" {
		name = DefaultName
	}
	return &Store{path: filepath.Join(dir, name)}
}

// Path returns the file location
func (s *Store) Path() string {
	return s.path
}

// Save creates or truncates the file and writes data to it
func (s *Store) Save(data []byte) (string, error) {
	lgr.Printf("[INFO] writing image to %s", s.path)
	fh, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644) //nolint:gosec // path is fixed by configuration
	if err != nil {
		return "", domain.NewCycleError(domain.ErrKindIO, "open image file", err)
	}

	if _, err = fh.Write(data); err != nil {
		_ = fh.Close()
		return "", domain.NewCycleError(domain.ErrKindIO, "write image file", fmt.Errorf("%s: %w", s.path, err))
	}
	if err = fh.Close(); err != nil {
		return "", domain.NewCycleError(domain.ErrKindIO, "close image file", fmt.Errorf("%s: %w", s.path, err))
	}
	return s.path, nil
}
