package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ObjectStorage persists uploaded files and hands back the public URL
// used verbatim in avatar/banner/course-image fields.
type ObjectStorage interface {
	Save(name string, r io.Reader) (string, error)
}

// LocalStorage writes uploads to a directory served as static files.
type LocalStorage struct {
	Dir     string
	BaseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{Dir: dir, BaseURL: baseURL}, nil
}

func (s *LocalStorage) Save(name string, r io.Reader) (string, error) {
	path := filepath.Join(s.Dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + filepath.Base(name), nil
}
