package storage

import (
	"errors"
	"path"
	"strings"
	"testing"
)

func TestNewKey(t *testing.T) {
	cases := []struct {
		filename string
		base     string
	}{
		{"me-30.jpg", "me-30.jpg"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\report.csv`, "report.csv"},
		{"", "file"},
	}

	for _, c := range cases {
		t.Run(c.filename, func(t *testing.T) {
			key := NewKey(c.filename)
			if !strings.HasPrefix(key, "files/") {
				t.Errorf("expected key under files/, got %s", key)
			}
			if b := path.Base(key); b != c.base {
				t.Errorf("expected base %s, got %s", c.base, b)
			}
			if _, err := CleanKey(key); err != nil {
				t.Errorf("generated key rejected: %s", err)
			}
		})
	}

	if NewKey("a.txt") == NewKey("a.txt") {
		t.Error("expected distinct keys for the same filename")
	}
}

func TestCleanKey(t *testing.T) {
	cases := []struct {
		key      string
		expected string
		err      error
	}{
		{"files/a/b.txt", "files/a/b.txt", nil},
		{"files/./a.txt", "files/a.txt", nil},
		{"../a.txt", "", ErrInvalidKey},
		{"files/../../a.txt", "", ErrInvalidKey},
		{"/etc/passwd", "", ErrInvalidKey},
		{"", "", ErrInvalidKey},
	}

	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			got, err := CleanKey(c.key)
			if !errors.Is(err, c.err) {
				t.Fatalf("expected error %v, got %v", c.err, err)
			}
			if got != c.expected {
				t.Errorf("expected %q, got %q", c.expected, got)
			}
		})
	}
}
