package service

import (
	"errors"
)

var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid")
	ErrForbidden    = errors.New("forbidden")
	// ErrAttachments reports uploads that could not be stored after the article itself was saved.
	ErrAttachments  = errors.New("attachments were not saved")
)

// Service is the use-case layer used by the web handlers. Operations that mutate a resource take the current
// identity and the resource owner's username and fail with ErrForbidden when they differ. Invalid forms are
// reported as ErrInvalidInput wrapping a validate.FieldErrors.
type Service interface {
	AccountService
	ProfileService
	BlogService
	ArticleService
	FileService
}
