package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

const (
	FileStorage = "fs"
	S3Storage   = "s3"
)

const EnvPrefix = "BLOGS"

type Configuration struct {
	// Name of the site, shown in page titles.
	Name string `mapstructure:"name"`
	// Host is the name of the host running the application, used to build absolute URLs.
	Host  string `mapstructure:"host"`
	Port  uint16 `mapstructure:"port"`
	Https bool   `mapstructure:"https"`
	// Debug, if true, will make the application log at debug level.
	Debug bool `mapstructure:"debug"`
	// DbUrl is the path to the database file, in the format accepted by go-sqlite3.
	DbUrl            string `mapstructure:"db_url"`
	MigrationsFolder string `mapstructure:"migrations_folder"`
	// Setup applies pending migrations when the server starts.
	Setup bool `mapstructure:"setup"`
	// SessionKey signs and encrypts the session cookie. It must be 32 bytes long.
	SessionKey string `mapstructure:"session_key"`
	// StaticDir is the directory holding the stylesheet, favicon and other static files.
	StaticDir string `mapstructure:"static_dir"`
	// Storage selects where uploaded files go: "fs" keeps them under MediaRoot, "s3" in S3Bucket.
	Storage   string `mapstructure:"storage"`
	MediaRoot string `mapstructure:"media_root"`
	// MediaURL is the path prefix under which stored files are served.
	MediaURL   string `mapstructure:"media_url"`
	S3Bucket   string `mapstructure:"s3_bucket"`
	S3Region   string `mapstructure:"s3_region"`
	S3Endpoint string `mapstructure:"s3_endpoint"`
	// MaxUploadBytes limits the size of a multipart request body.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
	QueueWorkers   int   `mapstructure:"queue_workers"`
	// Url is the instance's url, derived from Host, Port and Https.
	Url *url.URL `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "Blogs")
	v.SetDefault("host", "localhost")
	v.SetDefault("port", 8080)
	v.SetDefault("https", false)
	v.SetDefault("debug", false)
	v.SetDefault("db_url", "file:blogs.db?_foreign_keys=on")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("setup", false)
	v.SetDefault("session_key", "")
	v.SetDefault("static_dir", "static")
	v.SetDefault("storage", FileStorage)
	v.SetDefault("media_root", "media")
	v.SetDefault("media_url", "/media/")
	v.SetDefault("s3_bucket", "")
	v.SetDefault("s3_region", "")
	v.SetDefault("s3_endpoint", "")
	v.SetDefault("max_upload_bytes", 32<<20)
	v.SetDefault("queue_workers", 2)
}

// ReadConfig loads the configuration from an optional blogs.{yaml,toml,json} file in the working directory or
// /etc/blogs, overridden by BLOGS_* environment variables.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("blogs")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/blogs")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (cfg Configuration, err error) {
	if err = v.Unmarshal(&cfg); err != nil {
		return
	}

	if err = cfg.validate(); err != nil {
		return
	}

	scheme := "http"
	if cfg.Https {
		scheme = "https"
	}
	host := cfg.Host
	if cfg.Port != 80 && cfg.Port != 443 {
		host = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	}
	cfg.Url = &url.URL{Scheme: scheme, Host: host, Path: "/"}

	if !strings.HasSuffix(cfg.MediaURL, "/") {
		cfg.MediaURL += "/"
	}
	return
}

func (c Configuration) validate() error {
	var errs []error
	switch c.Storage {
	case FileStorage:
	case S3Storage:
		if c.S3Bucket == "" {
			errs = append(errs, errors.New("s3 storage requires s3_bucket"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q", c.Storage))
	}

	if c.SessionKey != "" && len(c.SessionKey) != 32 {
		errs = append(errs, errors.New("session_key must be 32 bytes long"))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("max_upload_bytes must be positive"))
	}
	return errors.Join(errs...)
}
