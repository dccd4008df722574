package db

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

type Account interface {
	// InsertUser persists the user and their empty profile in one transaction. user.Password must already be
	// hashed. A taken username yields ErrConflict.
	InsertUser(ctx context.Context, user domain.NewUser) (domain.Account, error)
	GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error)
}
