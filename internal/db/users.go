package db

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

type Users interface {
	// GetProfile returns the profile with its avatar, if any; blogs are not loaded.
	GetProfile(ctx context.Context, username string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, username string, update domain.ProfileUpdate) error
	// UpsertAvatar makes file the profile's only avatar and returns the storage key of the avatar it replaced,
	// or an empty string.
	UpsertAvatar(ctx context.Context, profileID int64, file domain.File) (previous string, err error)
}
