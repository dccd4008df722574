package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/service"
	"github.com/sidereusnuntius/blogs/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser confirms the user's identity and, if their credentials are correct, returns data to be put
// in the login session, such as the user's name and id.
func (s *AppService) AuthenticateUser(ctx context.Context, username, password string) (u domain.Account, authenticated bool, err error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		err = invalid(errors.New("username and password are required"))
		return
	}

	u, err = s.DB.GetAuthDataByUsername(ctx, username)
	if errors.Is(err, db.ErrNotFound) {
		return domain.Account{}, false, nil
	}
	if err != nil {
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return domain.Account{}, false, nil
	}
	return u, true, nil
}

func (s *AppService) CreateUser(ctx context.Context, form service.SignUp) (domain.Account, error) {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)
	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)
	form.Phone = strings.TrimSpace(form.Phone)
	form.City = strings.TrimSpace(form.City)

	err := validate.SignUpForm(form.Username, form.Password1, form.Password2, form.Email,
		form.FirstName, form.LastName, form.Phone, form.City)
	if err != nil {
		return domain.Account{}, invalid(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password1), BcryptCost)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.DB.InsertUser(ctx, domain.NewUser{
		UserCore: domain.UserCore{
			Username:  form.Username,
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Email:     form.Email,
		},
		Password: string(hash),
		Phone:    form.Phone,
		City:     form.City,
	})
	if errors.Is(err, db.ErrConflict) {
		return domain.Account{}, fmt.Errorf("%w: %w", service.ErrConflict,
			validate.FieldErrors{"username": "a user with that username already exists"})
	}
	return account, err
}
