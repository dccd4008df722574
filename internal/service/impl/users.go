package core

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/validate"
)

func (s *AppService) GetProfile(ctx context.Context, username string) (p domain.Profile, err error) {
	username = strings.TrimSpace(username)

	p, err = s.DB.GetProfile(ctx, username)
	if err != nil {
		return
	}
	p.Blogs, err = s.DB.ListBlogs(ctx, username)
	return
}

func (s *AppService) UpdateProfile(ctx context.Context, current *domain.Identity, username string, update domain.ProfileUpdate, avatar *domain.Upload) error {
	if err := authorize(current, username); err != nil {
		return err
	}

	update.FirstName = strings.TrimSpace(update.FirstName)
	update.LastName = strings.TrimSpace(update.LastName)
	update.Email = strings.TrimSpace(update.Email)
	update.Phone = strings.TrimSpace(update.Phone)
	update.City = strings.TrimSpace(update.City)

	err := validate.ProfileForm(update.FirstName, update.LastName, update.Email, update.Phone, update.City)
	if avatar != nil && !strings.HasPrefix(avatar.MimeType, "image/") {
		fields := validate.FieldErrors{}
		errors.As(err, &fields)
		fields["avatar"] = "upload a valid image"
		err = fields
	}
	if err != nil {
		return invalid(err)
	}

	if err = s.DB.UpdateProfile(ctx, username, update); err != nil {
		return err
	}

	if avatar == nil {
		return nil
	}
	return s.replaceAvatar(ctx, username, *avatar)
}

// replaceAvatar stores the new image, points the profile at it and schedules the old image for removal.
func (s *AppService) replaceAvatar(ctx context.Context, username string, upload domain.Upload) error {
	account, err := s.DB.GetAuthDataByUsername(ctx, username)
	if err != nil {
		return err
	}

	unlock := s.avatarLocks.Lock(strconv.FormatInt(account.ProfileID, 10))
	defer unlock()

	upload.Type = domain.ImageType
	file, err := s.store(upload)
	if err != nil {
		return err
	}

	previous, err := s.DB.UpsertAvatar(ctx, account.ProfileID, file)
	if err != nil {
		s.discard(file)
		return err
	}

	log.Debug().
		Str("user", username).
		Str("key", file.Key).
		Str("previous", previous).
		Msg("replaced avatar")
	s.cleanup(ctx, previous)
	return nil
}
