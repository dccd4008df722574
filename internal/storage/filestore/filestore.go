package filestore

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/storage"
)

type FileStore struct {
	Root string
}

func New(root string) (fs storage.Storage, err error) {
	fs = &FileStore{
		Root: root,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("not a directory")
			err = storage.ErrNotDir
		}
		return
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up storage")
		err = storage.ErrInternal
	}

	return
}

func (s *FileStore) resolve(key string) (string, error) {
	key, err := storage.CleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.Root, filepath.FromSlash(key)), nil
}

func (s *FileStore) Open(key string) (content []byte, err error) {
	path, err := s.resolve(key)
	if err != nil {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = storage.ErrNotExist
		} else {
			log.Error().Err(err).Msg("failed to open file at path " + path)
			err = storage.ErrInternal
		}
		return
	}
	defer f.Close()

	content, err = io.ReadAll(f)
	if err != nil {
		log.Error().Err(err).Msg("failed to read file " + path)
		err = storage.ErrInternal
	}
	return
}

// Delete removes the file and the directory holding it, if that directory became empty.
func (s *FileStore) Delete(key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Msg("file deletion error")
		return storage.ErrInternal
	}

	if dir := filepath.Dir(path); dir != filepath.Clean(s.Root) {
		// Fails harmlessly when other files share the directory.
		_ = os.Remove(dir)
	}
	return nil
}

func (s *FileStore) Create(content io.Reader, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	_, err = os.Stat(path)
	if err == nil {
		return storage.ErrAlreadyExists
	}
	if !os.IsNotExist(err) {
		log.Error().Err(err).Msg("unknown filesystem error")
		return storage.ErrInternal
	}

	if err = os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		log.Error().Err(err).Msg("failed to create directory for " + path)
		return storage.ErrCreate
	}

	file, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Msg("failed to create file with path " + path)
		return storage.ErrCreate
	}
	defer file.Close()

	_, err = io.Copy(file, content)
	if err != nil {
		log.Error().Err(err).Msg("failed to copy from reader")
		return storage.ErrInternal
	}

	return nil
}
