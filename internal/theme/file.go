package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the preference in a small JSON file, {"theme":"dark"}.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(_ context.Context) (Mode, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", f.path, err)
	}

	var prefs map[string]string
	if err := json.Unmarshal(data, &prefs); err != nil {
		return "", false, nil
	}
	mode, ok := ParseMode(prefs[Key])
	return mode, ok, nil
}

func (f *FileStore) Save(_ context.Context, mode Mode) error {
	data, err := json.Marshal(map[string]string{Key: string(mode)})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

var _ Store = (*FileStore)(nil)
