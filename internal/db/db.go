package db

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal database error")
)

//go:generate mockgen -destination=../mocks/db.go -package=mocks . DB

// DB is the application's repository. Lookups of blogs and articles always take the owner's username, so a
// resource can only be reached through the path of the profile that owns it.
type DB interface {
	Account
	Users
	Blogs
	Article
	Files
}
