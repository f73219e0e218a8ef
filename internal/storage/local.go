package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// Store saves an uploaded file and returns the public URL it will be served
// under.
type Store interface {
	Save(filename string, r io.Reader) (string, error)
}

// LocalStore writes uploads to a directory on disk, served by the static file
// handler. Filenames are replaced with a random id so uploads can never
// collide or traverse outside the directory.
type LocalStore struct {
	dir        string
	baseURL    string
	extensions map[string]bool
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		extensions: map[string]bool{
			".pdf":  true,
			".doc":  true,
			".docx": true,
			".png":  true,
			".jpg":  true,
			".jpeg": true,
			".webp": true,
			".svg":  true,
		},
	}, nil
}

func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !s.extensions[ext] {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
