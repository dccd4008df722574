package filestore

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/storage"
)

var store storage.Storage
var path string

func TestMain(m *testing.M) {
	var err error
	path, err = os.MkdirTemp(".", "tempdir")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup tests")
		return
	}

	store = &FileStore{
		Root: path,
	}

	code := m.Run()
	if err = os.RemoveAll(path); err != nil {
		log.Fatal().Err(err).Msg("removal of temporary directory failed")
	}
	os.Exit(code)
}

func TestCreate(t *testing.T) {
	cases := []struct {
		Casename string
		Path     string
		Content  string
		Err      error
	}{
		{"create file", "f1.txt", "hello, world!", nil},
		{"create duplicate file", "f1.txt", "hello, world!", storage.ErrAlreadyExists},
		{"create nested file", "files/abc/me-30.jpg", "jpeg", nil},
		{"escape root", "../outside.txt", "nope", storage.ErrInvalidKey},
	}

	for _, c := range cases {
		t.Run(c.Casename, func(t *testing.T) {
			err := store.Create(strings.NewReader(c.Content), c.Path)
			if err != nil {
				if c.Err == nil {
					t.Error("unexpected error:", err)
					return
				} else if !errors.Is(err, c.Err) {
					t.Errorf("unexpected error type.\nexpected: %s\ngot: %s\n", c.Err, err)
				}
				return
			}
			if c.Err != nil {
				t.Errorf("expected error %s", c.Err)
				return
			}

			f, err := os.Open(filepath.Join(path, filepath.FromSlash(c.Path)))
			if err != nil {
				t.Errorf("failed to open file: %s", err)
				return
			}
			defer f.Close()

			content, err := io.ReadAll(f)
			if err != nil {
				t.Errorf("unexpected error: %s", err)
			}

			if string(content) != c.Content {
				t.Errorf("expected \"%s\", got \"%s\"", c.Content, content)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	key := "files/open/hello.txt"
	if err := store.Create(strings.NewReader("hello"), key); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	content, err := store.Open(key)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(content) != "hello" {
		t.Errorf("expected \"hello\", got \"%s\"", content)
	}

	if _, err = store.Open("files/open/missing.txt"); !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	name := "moribundus"
	newpath := filepath.Join(path, name)
	f, err := os.Create(newpath)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	f.Close()

	err = store.Delete(name)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}

	name = "none"
	err = store.Delete(name)
	if err == nil || !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, storage.ErrNotExist)
	}
}

func TestDeleteRemovesEmptyDirectory(t *testing.T) {
	key := "files/gone/a.txt"
	if err := store.Create(strings.NewReader("a"), key); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := store.Delete(key); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, err := os.Stat(filepath.Join(path, "files", "gone")); !os.IsNotExist(err) {
		t.Errorf("expected directory to be removed, got %v", err)
	}
}
