package db

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

type Files interface {
	AddAttachment(ctx context.Context, articleID int64, file domain.File) (int64, error)
	ListAttachments(ctx context.Context, articleID int64) ([]domain.Attachment, error)
	// GetFile finds the metadata of a stored avatar or attachment by its storage key.
	GetFile(ctx context.Context, key string) (domain.File, error)
}
