package impl

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/domain"
)

func (d *dbImpl) GetProfile(ctx context.Context, username string) (domain.Profile, error) {
	var (
		p      domain.Profile
		joined int64
	)
	err := d.db.QueryRowContext(ctx, `
		SELECT u.id, u.username, u.first_name, u.last_name, u.email, u.joined, p.id, p.phone, p.city
		FROM users u JOIN profiles p ON p.user_id = u.id
		WHERE u.username = ?`, username).
		Scan(&p.ID, &p.Username, &p.FirstName, &p.LastName, &p.Email, &joined, &p.ProfileID, &p.Phone, &p.City)
	if err != nil {
		return domain.Profile{}, d.HandleError(err)
	}
	p.Joined = fromNanos(joined)

	var (
		a       domain.Avatar
		updated int64
	)
	err = d.db.QueryRowContext(ctx, `
		SELECT id, storage_key, filename, mime_type, size_bytes, updated
		FROM avatars WHERE profile_id = ?`, p.ProfileID).
		Scan(&a.ID, &a.Key, &a.Filename, &a.MimeType, &a.SizeBytes, &updated)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return domain.Profile{}, d.HandleError(err)
	default:
		a.ProfileID = p.ProfileID
		a.Type = domain.ImageType
		a.Updated = fromNanos(updated)
		p.Avatar = &a
	}

	return p, nil
}

func (d *dbImpl) UpdateProfile(ctx context.Context, username string, update domain.ProfileUpdate) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		var userID int64
		err := tx.QueryRowContext(ctx, `
			UPDATE users SET first_name = ?, last_name = ?, email = ?
			WHERE username = ? RETURNING id`,
			update.FirstName, update.LastName, update.Email, username).Scan(&userID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `UPDATE profiles SET phone = ?, city = ? WHERE user_id = ?`,
			update.Phone, update.City, userID)
		return err
	})
}

func (d *dbImpl) UpsertAvatar(ctx context.Context, profileID int64, file domain.File) (previous string, err error) {
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `SELECT storage_key FROM avatars WHERE profile_id = ?`, profileID).
			Scan(&previous)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO avatars (profile_id, storage_key, filename, mime_type, size_bytes, updated)
			SELECT id, ?, ?, ?, ?, ? FROM profiles WHERE id = ?
			ON CONFLICT (profile_id) DO UPDATE SET
				storage_key = excluded.storage_key,
				filename = excluded.filename,
				mime_type = excluded.mime_type,
				size_bytes = excluded.size_bytes,
				updated = excluded.updated`,
			file.Key, file.Filename, file.MimeType, file.SizeBytes, d.now().UnixNano(), profileID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return db.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return previous, nil
}
