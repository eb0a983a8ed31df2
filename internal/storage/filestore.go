package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"todofs/internal/logging"
)

// FileStore implements Store on the local filesystem.
type FileStore struct {
	root string
	log  *log.Logger
}

// NewFileStore creates a store rooted at root. The root is created lazily on
// the first write. A nil logger discards all events.
func NewFileStore(root string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &FileStore{
		root: filepath.Clean(root),
		log:  logger.With("store", "file"),
	}
}

// Root returns the directory that holds all lists.
func (s *FileStore) Root() string {
	return s.root
}

func (s *FileStore) listDir(list string) (string, error) {
	if err := ValidateList(list); err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(list)), nil
}

func (s *FileStore) entryPath(list, name string) (string, error) {
	dir, err := s.listDir(list)
	if err != nil {
		return "", err
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Write implements Store.
func (s *FileStore) Write(list, name, value string) error {
	path, err := s.entryPath(list, name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create list dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(value), 0644); err != nil {
		return fmt.Errorf("write %s/%s: %w", list, name, err)
	}

	s.log.Debug("write", "list", list, "name", name, "value", value)
	return nil
}

// Read implements Store.
func (s *FileStore) Read(list, name, def string) string {
	path, err := s.entryPath(list, name)
	if err != nil {
		s.log.Debug("read rejected", "list", list, "name", name, "err", err)
		return def
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("read failed, using default", "list", list, "name", name, "err", err)
		}
		return def
	}
	return string(data)
}

// Delete implements Store.
func (s *FileStore) Delete(list, name string) error {
	path, err := s.entryPath(list, name)
	if err != nil {
		return err
	}

	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s/%s: %w", list, name, err)
	}
	// Nested lists live next to entries; never treat one as a task.
	if info.IsDir() {
		return nil
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s/%s: %w", list, name, err)
	}

	s.log.Debug("delete", "list", list, "name", name)
	return nil
}

// List implements Store.
func (s *FileStore) List(list string) ([]string, error) {
	dir, err := s.listDir(list)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read list %s: %w", list, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// DeleteAll implements Store.
func (s *FileStore) DeleteAll(list string) error {
	dir, err := s.listDir(list)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("delete list %s: %w", list, err)
	}

	s.log.Debug("delete list", "list", list)
	return nil
}

// Lists implements Store.
func (s *FileStore) Lists() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read root: %w", err)
	}

	lists := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		lists = append(lists, entry.Name())
	}
	return lists, nil
}
