package core

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"codeberg.org/gruf/go-mutexes"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/access"
	"github.com/sidereusnuntius/blogs/internal/config"
	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/queue"
	"github.com/sidereusnuntius/blogs/internal/service"
	"github.com/sidereusnuntius/blogs/internal/state"
	"github.com/sidereusnuntius/blogs/internal/storage"
)

const (
	BcryptCost = 10
)

type AppService struct {
	Config  config.Configuration
	DB      db.DB
	storage storage.Storage
	queue   queue.FileQueue
	// avatarLocks serializes avatar replacement per profile id.
	avatarLocks *mutexes.MutexMap
}

func New(state *state.State) service.Service {
	return &AppService{
		Config:      state.Config,
		DB:          state.DB,
		storage:     state.Storage,
		queue:       state.Queue,
		avatarLocks: &mutexes.MutexMap{},
	}
}

// authorize fails with ErrForbidden unless current owns the resources of owner.
func authorize(current *domain.Identity, owner string) error {
	if !access.HasAccess(current, access.ResourceOwner{Username: owner}) {
		return service.ErrForbidden
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidInput, err)
}

// store saves the upload under a fresh key.
func (s *AppService) store(upload domain.Upload) (domain.File, error) {
	key := storage.NewKey(upload.Filename)
	if err := s.storage.Create(bytes.NewReader(upload.Content), key); err != nil {
		return domain.File{}, fmt.Errorf("failed to store %s: %w", upload.Filename, err)
	}
	return domain.File{
		FileMetadata: upload.FileMetadata,
		Key:          key,
	}, nil
}

// discard removes a stored file whose row could not be written.
func (s *AppService) discard(file domain.File) {
	if err := s.storage.Delete(file.Key); err != nil {
		log.Error().
			Str("path", file.Key).
			Str("type", file.MimeType).
			Err(err).
			Msg("error when trying to delete file after failed transaction")
	}
}

// cleanup enqueues the removal of files whose rows are gone. The rows are already deleted, so a failure here
// only leaves orphaned files behind and is not reported to the caller.
func (s *AppService) cleanup(ctx context.Context, keys ...string) {
	keys = slices.DeleteFunc(keys, func(k string) bool { return k == "" })
	if len(keys) == 0 {
		return
	}
	if err := s.queue.RemoveFiles(ctx, keys...); err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("failed to enqueue file removal")
	}
}
