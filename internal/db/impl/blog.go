package impl

import (
	"context"
	"database/sql"

	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/domain"
)

const blogColumns = `
	b.id, b.profile_id, u.username, b.title, b.description, b.created,
	(SELECT COUNT(*) FROM articles a WHERE a.blog_id = b.id)`

const blogSource = `
	blogs b
	JOIN profiles p ON p.id = b.profile_id
	JOIN users u ON u.id = p.user_id`

func scanBlog(row interface{ Scan(...any) error }) (domain.Blog, error) {
	var (
		b       domain.Blog
		created int64
	)
	err := row.Scan(&b.ID, &b.ProfileID, &b.Owner, &b.Title, &b.Description, &created, &b.ArticlesCount)
	b.Created = fromNanos(created)
	return b, err
}

func (d *dbImpl) CreateBlog(ctx context.Context, owner, title, description string) (int64, error) {
	res, err := d.db.ExecContext(ctx, `
		INSERT INTO blogs (profile_id, title, description, created)
		SELECT p.id, ?, ?, ? FROM profiles p JOIN users u ON u.id = p.user_id WHERE u.username = ?`,
		title, description, d.now().UnixNano(), owner)
	if err != nil {
		return 0, d.HandleError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return 0, d.HandleError(err)
	} else if n == 0 {
		return 0, db.ErrNotFound
	}
	id, err := res.LastInsertId()
	return id, d.HandleError(err)
}

func (d *dbImpl) GetBlog(ctx context.Context, owner string, id int64) (domain.Blog, error) {
	b, err := scanBlog(d.db.QueryRowContext(ctx,
		`SELECT `+blogColumns+` FROM `+blogSource+` WHERE u.username = ? AND b.id = ?`, owner, id))
	if err != nil {
		return domain.Blog{}, d.HandleError(err)
	}
	return b, nil
}

func (d *dbImpl) ListBlogs(ctx context.Context, owner string) ([]domain.Blog, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+blogColumns+` FROM `+blogSource+` WHERE u.username = ? ORDER BY b.created DESC, b.id DESC`, owner)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	blogs := []domain.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, d.HandleError(err)
		}
		blogs = append(blogs, b)
	}
	return blogs, d.HandleError(rows.Err())
}

func (d *dbImpl) UpdateBlog(ctx context.Context, owner string, id int64, title, description string) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE blogs SET title = ?, description = ?
		WHERE id = ? AND profile_id IN (
			SELECT p.id FROM profiles p JOIN users u ON u.id = p.user_id WHERE u.username = ?)`,
		title, description, id, owner)
	if err != nil {
		return d.HandleError(err)
	}
	return d.requireAffected(res)
}

func (d *dbImpl) DeleteBlog(ctx context.Context, owner string, id int64) (keys []string, err error) {
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		keys, err = collectKeys(ctx, tx, `
			SELECT f.storage_key FROM attachments f
			JOIN articles a ON a.id = f.article_id
			JOIN blogs b ON b.id = a.blog_id
			JOIN profiles p ON p.id = b.profile_id
			JOIN users u ON u.id = p.user_id
			WHERE u.username = ? AND b.id = ?`, owner, id)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			DELETE FROM blogs WHERE id = ? AND profile_id IN (
				SELECT p.id FROM profiles p JOIN users u ON u.id = p.user_id WHERE u.username = ?)`, id, owner)
		if err != nil {
			return err
		}
		return d.requireAffected(res)
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (d *dbImpl) requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return d.HandleError(err)
	}
	if n == 0 {
		return db.ErrNotFound
	}
	return nil
}
