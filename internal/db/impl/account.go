package impl

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

func (d *dbImpl) GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error) {
	var a domain.Account
	err := d.db.QueryRowContext(ctx, `
		SELECT u.id, p.id, u.username, u.email, u.password
		FROM users u JOIN profiles p ON p.user_id = u.id
		WHERE u.username = ?`, username).
		Scan(&a.UserID, &a.ProfileID, &a.Username, &a.Email, &a.Password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("can't fetch credentials of %q: %w", username, d.HandleError(err))
	}
	return a, nil
}

func (d *dbImpl) InsertUser(ctx context.Context, user domain.NewUser) (account domain.Account, err error) {
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO users (username, password, first_name, last_name, email, joined)
			VALUES (?, ?, ?, ?, ?, ?)`,
			user.Username, user.Password, user.FirstName, user.LastName, user.Email, d.now().UnixNano())
		if err != nil {
			return err
		}
		if account.UserID, err = res.LastInsertId(); err != nil {
			return err
		}

		res, err = tx.ExecContext(ctx, `INSERT INTO profiles (user_id, phone, city) VALUES (?, ?, ?)`,
			account.UserID, user.Phone, user.City)
		if err != nil {
			return err
		}
		account.ProfileID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return domain.Account{}, err
	}

	account.Username = user.Username
	account.Email = user.Email
	account.Password = user.Password
	return account, nil
}
