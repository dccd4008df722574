package service

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

// SignUp is the registration form.
type SignUp struct {
	Username  string
	Password1 string
	Password2 string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	City      string
}

type AccountService interface {
	// AuthenticateUser checks the user's credentials. If authentication fails, authenticated is false and
	// err is nil; a non nil error indicates that an internal, unexpected error has occurred.
	AuthenticateUser(ctx context.Context, username, password string) (u domain.Account, authenticated bool, err error)
	// CreateUser registers a user together with their profile. A taken username is reported as a field error.
	CreateUser(ctx context.Context, form SignUp) (domain.Account, error)
}
