package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

const DefaultStorageFileName = "local-storage.json"

// DefaultStoragePath resolves <user config dir>/go-crypto-dashboard/local-storage.json.
func DefaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "go-crypto-dashboard", DefaultStorageFileName)
}

type FileStorage struct {
	Path  string
	mutex sync.Mutex
}

func NewFileStorage(path string) *FileStorage {
	if path == "" {
		path = DefaultStoragePath()
	}

	return &FileStorage{Path: path}
}

func (f *FileStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	items, err := f.load()
	if err != nil {
		return "", false, err
	}

	value, ok := items[key]

	return value, ok, nil
}

func (f *FileStorage) SetItem(_ context.Context, key string, value string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	items, err := f.load()
	if err != nil {
		return err
	}

	items[key] = value

	return f.save(items)
}

func (f *FileStorage) load() (map[string]string, error) {
	items := make(map[string]string)

	content, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return items, nil
		}

		return nil, errors.Wrapf(err, "read %s", f.Path)
	}

	if len(content) == 0 {
		return items, nil
	}

	if err := json.Unmarshal(content, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %s", f.Path)
	}

	return items, nil
}

func (f *FileStorage) save(items map[string]string) error {
	encoded, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return errors.Wrap(err, "create storage dir")
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}

	return errors.Wrap(os.Rename(tmp, f.Path), "replace storage file")
}
