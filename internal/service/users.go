package service

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

type ProfileService interface {
	// GetProfile returns the profile with its avatar and blogs, newest blog first.
	GetProfile(ctx context.Context, username string) (domain.Profile, error)
	// UpdateProfile overwrites the editable fields. A non nil avatar replaces the current one.
	UpdateProfile(ctx context.Context, current *domain.Identity, username string, update domain.ProfileUpdate, avatar *domain.Upload) error
}
