// Package media stores uploaded checklist photos on a filesystem and hands out
// references under the public /media/ prefix.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"cleaning/internal/pkg/errs"

	"github.com/spf13/afero"
)

// URLPrefix is the path under which stored files are served.
const URLPrefix = "/media/"

// FileSystemStore implements ports.MediaStore on top of an afero filesystem
// rooted at dir.
type FileSystemStore struct {
	fs  afero.Fs
	dir string
}

// NewFileSystemStore creates dir on fs when missing.
func NewFileSystemStore(fs afero.Fs, dir string) (*FileSystemStore, error) {
	if fs == nil {
		return nil, errs.NewValueIsRequiredError("fs")
	}
	if strings.TrimSpace(dir) == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}

	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	return &FileSystemStore{fs: fs, dir: dir}, nil
}

// NewOsStore stores files on the local disk.
func NewOsStore(dir string) (*FileSystemStore, error) {
	return NewFileSystemStore(afero.NewOsFs(), dir)
}

// Save writes content to dir/name and returns "/media/<name>". Directory
// components in name are dropped.
func (s *FileSystemStore) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." {
		return "", errs.NewValueIsInvalidError("media name")
	}

	if err := afero.WriteReader(s.fs, filepath.Join(s.dir, base), content); err != nil {
		return "", fmt.Errorf("write media %s: %w", base, err)
	}

	return path.Join(URLPrefix, base), nil
}

// Delete removes the file behind ref.
func (s *FileSystemStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.fs.Remove(s.pathOf(ref))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete media %s: %w", ref, err)
	}
	return nil
}

// Open returns the stored file for reading.
func (s *FileSystemStore) Open(ref string) (afero.File, error) {
	return s.fs.Open(s.pathOf(ref))
}

func (s *FileSystemStore) pathOf(ref string) string {
	return filepath.Join(s.dir, filepath.Base(strings.TrimPrefix(ref, URLPrefix)))
}

// Handler serves stored files. Mount it with URLPrefix stripped.
func (s *FileSystemStore) Handler() http.Handler {
	return http.FileServer(afero.NewHttpFs(afero.NewBasePathFs(s.fs, s.dir)).Dir("/"))
}
