package config

import (
	"testing"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if cfg.Storage != FileStorage {
		t.Errorf("expected storage %q, got %q", FileStorage, cfg.Storage)
	}
	if cfg.Url.String() != "http://localhost:8080/" {
		t.Errorf("unexpected url %s", cfg.Url)
	}
	if cfg.MediaURL != "/media/" {
		t.Errorf("unexpected media url %s", cfg.MediaURL)
	}
}

func TestReadConfigEnv(t *testing.T) {
	t.Setenv("BLOGS_HOST", "blogs.example")
	t.Setenv("BLOGS_PORT", "443")
	t.Setenv("BLOGS_HTTPS", "true")
	t.Setenv("BLOGS_MEDIA_URL", "/uploads")

	cfg, err := ReadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if cfg.Url.String() != "https://blogs.example/" {
		t.Errorf("unexpected url %s", cfg.Url)
	}
	if cfg.MediaURL != "/uploads/" {
		t.Errorf("unexpected media url %s", cfg.MediaURL)
	}
}

func TestReadConfigInvalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"s3 without bucket", map[string]string{"BLOGS_STORAGE": "s3"}},
		{"unknown storage", map[string]string{"BLOGS_STORAGE": "ftp"}},
		{"short session key", map[string]string{"BLOGS_SESSION_KEY": "short"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			if _, err := ReadConfig(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
