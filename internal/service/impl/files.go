package core

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/storage"
)

// GetFile returns a stored avatar or attachment. Keys that are not known to the database are never read from
// the storage backend.
func (s *AppService) GetFile(ctx context.Context, key string) (content []byte, metadata domain.File, err error) {
	key, err = storage.CleanKey(key)
	if err != nil {
		return nil, domain.File{}, db.ErrNotFound
	}

	metadata, err = s.DB.GetFile(ctx, key)
	if err != nil {
		return
	}

	content, err = s.storage.Open(key)
	if errors.Is(err, storage.ErrNotExist) {
		err = db.ErrNotFound
	}
	return
}
