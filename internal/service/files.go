package service

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

type FileService interface {
	GetFile(ctx context.Context, key string) (content []byte, metadata domain.File, err error)
}
