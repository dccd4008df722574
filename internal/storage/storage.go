package storage

import (
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotDir        = errors.New("given root is not a directory")
	ErrInternal      = errors.New("internal error")
	ErrCreate        = errors.New("failed to create file")
	ErrAlreadyExists = errors.New("filename already exists")
	ErrNotExist      = errors.New("file does not exist")
	ErrInvalidKey    = errors.New("invalid key")
)

//go:generate mockgen -destination=../mocks/storage.go -package=mocks . Storage

// Storage keeps uploaded files. Keys are slash separated relative paths, such as those returned by NewKey.
type Storage interface {
	Open(key string) ([]byte, error)
	Create(content io.Reader, key string) error
	Delete(key string) error
}

// NewKey returns a key under files/ that keeps the original filename and cannot collide with existing keys.
func NewKey(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		name = "file"
	}
	return path.Join("files", uuid.NewString(), name)
}

// CleanKey rejects keys that are absolute or that escape the storage root.
func CleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
