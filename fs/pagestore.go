// Package fs provides file-based storage for downloaded pages, extracted
// tables and pipeline output.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/landval"
)

// PageExt is the file extension of stored pages.
const PageExt = ".html"

// Ensure FileStore implements landval.PageStore at compile time.
var _ landval.PageStore = (*FileStore)(nil)

// FileStore implements landval.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string

	saved     int
	unchanged int
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// PageFilename returns the file name a page is stored under: the region
// name with path separators replaced, plus ".html".
func PageFilename(page *landval.Page) string {
	name := strings.NewReplacer("/", "-", `\`, "-").Replace(page.Region.Name)
	return name + PageExt
}

// Save writes the page into the temporary directory.
func (s *FileStore) Save(ctx context.Context, page *landval.Page) error {
	if page.Region.Name == "" {
		return landval.Errorf(landval.EINVALID, "page region name required")
	}

	filename := PageFilename(page)
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	if previous, err := os.ReadFile(filepath.Join(s.finalDir(), filename)); err == nil {
		if xxhash.Sum64(previous) == xxhash.Sum64String(page.HTML) {
			s.unchanged++
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(filepath.Join(s.tempDir(), filename), []byte(page.HTML), 0644); err != nil {
		return err
	}
	s.saved++
	return nil
}

// Stats returns the number of pages saved and how many of them are
// identical to the page already committed under the same name.
func (s *FileStore) Stats() (saved, unchanged int) {
	return s.saved, s.unchanged
}

// Commit replaces the final directory with the temporary one. Pages
// committed earlier that were not saved again are carried over, so a region
// that failed in this run keeps its previous page.
func (s *FileStore) Commit() error {
	// Nothing saved: keep the previous pages.
	if _, err := os.Stat(s.tempDir()); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := s.carryForward(); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// carryForward copies committed pages missing from the temporary directory
// into it.
func (s *FileStore) carryForward() error {
	entries, err := os.ReadDir(s.finalDir())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != PageExt {
			continue
		}
		dst := filepath.Join(s.tempDir(), e.Name())
		if _, err := os.Stat(dst); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		data, err := os.ReadFile(filepath.Join(s.finalDir(), e.Name()))
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// Abort discards pages saved since the last commit.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
