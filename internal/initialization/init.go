// The init package contains functions that setup required dependencies such as the SQLite database.
package initialization

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/config"
)

// SetupDB applies all remaining migrations found in folder.
func SetupDB(db *sql.DB, folder, dbname string) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("database is up to date")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}
	log.Info().Msg("migrations applied")
	return nil
}

// OpenDB opens the sqlite database. An in-memory database is limited to one connection, since every new
// connection to it would otherwise see a separate, empty database.
func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
		return nil, err
	}

	if strings.Contains(connString, "mode=memory") || strings.HasPrefix(connString, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type queueLogger struct{}

func (queueLogger) Info(message string, params ...any) {
	log.Debug().Fields(params).Msg(message)
}

func (queueLogger) Error(message string, params ...any) {
	log.Error().Fields(params).Msg(message)
}

// InitQueue creates the backlite client on top of the application's database and installs its tables. The
// client is not started; queues must be registered first.
func InitQueue(cfg *config.Configuration, db *sql.DB) (*backlite.Client, error) {
	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              db,
		Logger:          queueLogger{},
		ReleaseAfter:    time.Minute,
		NumWorkers:      cfg.QueueWorkers,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		return nil, err
	}

	if err = client.Install(); err != nil {
		return nil, err
	}
	return client, nil
}
