package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/config"
	db "github.com/sidereusnuntius/blogs/internal/db/impl"
	"github.com/sidereusnuntius/blogs/internal/initialization"
	"github.com/sidereusnuntius/blogs/internal/queue"
	service "github.com/sidereusnuntius/blogs/internal/service/impl"
	"github.com/sidereusnuntius/blogs/internal/state"
	"github.com/sidereusnuntius/blogs/internal/storage"
	"github.com/sidereusnuntius/blogs/internal/storage/filestore"
	"github.com/sidereusnuntius/blogs/internal/storage/s3store"
	"github.com/sidereusnuntius/blogs/internal/web"
)

const sessionLifetime = 14 * 24 * time.Hour

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal().Err(err).Msg("failed to read .env file")
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer d.Close()
	log.Info().Msg("database connection established")

	if cfg.Setup {
		if err = initialization.SetupDB(d, cfg.MigrationsFolder, "blogs"); err != nil {
			log.Fatal().Err(err).Msg("failed to set up database")
		}
	}

	bl, err := initialization.InitQueue(&cfg, d)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to set up the task queue")
	}

	store, err := openStorage(ctx, &cfg)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage).Msg("failed to set up file storage")
	}

	st := state.State{
		Config:  cfg,
		DB:      db.New(d),
		Storage: store,
		Queue:   queue.New(ctx, store, bl),
	}
	svc := service.New(&st)

	gob.Register(web.Session{})
	manager, err := sessionManager(&cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session manager")
	}

	handler := web.New(&cfg, svc, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Str("addr", s.Addr).Stringer("url", cfg.Url).Msg("started server")
	if err = s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Send()
	}
	log.Info().Msg("server stopped")
}

func openStorage(ctx context.Context, cfg *config.Configuration) (storage.Storage, error) {
	if cfg.Storage == config.S3Storage {
		client, err := s3store.NewClient(ctx, cfg.S3Region, cfg.S3Endpoint)
		if err != nil {
			return nil, err
		}
		return s3store.New(client, cfg.S3Bucket), nil
	}
	return filestore.New(cfg.MediaRoot)
}

// sessionManager uses the configured key, or a random one that invalidates every session on restart.
func sessionManager(cfg *config.Configuration) (*scs.Manager, error) {
	key := cfg.SessionKey
	if key == "" {
		b := make([]byte, 24)
		if _, err := rand.Read(b); err != nil {
			return nil, err
		}
		key = base64.StdEncoding.EncodeToString(b)
		log.Warn().Msg("no session key configured; sessions will not survive a restart")
	}

	manager := scs.NewCookieManager(key)
	manager.Lifetime(sessionLifetime)
	manager.Secure(cfg.Https)
	manager.HttpOnly(true)
	return manager, nil
}
