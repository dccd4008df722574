package impl

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/domain"
)

const articleColumns = `
	a.id, a.blog_id, b.title, u.username, a.title, a.content, a.created, a.edited,
	(SELECT COUNT(*) FROM attachments f WHERE f.article_id = a.id)`

const articleSource = `
	articles a
	JOIN blogs b ON b.id = a.blog_id
	JOIN profiles p ON p.id = b.profile_id
	JOIN users u ON u.id = p.user_id`

// ownedArticle restricts a query over articleSource to one article reachable through its owner's blog.
const ownedArticle = `u.username = ? AND b.id = ? AND a.id = ?`

func scanArticle(row interface{ Scan(...any) error }) (domain.Article, error) {
	var (
		a               domain.Article
		created, edited int64
	)
	err := row.Scan(&a.ID, &a.BlogID, &a.BlogTitle, &a.Owner, &a.Title, &a.Content, &created, &edited,
		&a.AttachmentsCount)
	a.Created = fromNanos(created)
	a.Edited = fromNanos(edited)
	return a, err
}

func (d *dbImpl) listArticles(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, d.HandleError(err)
		}
		articles = append(articles, a)
	}
	return articles, d.HandleError(rows.Err())
}

// CreateArticle inserts the article into the blog, provided the blog belongs to owner.
func (d *dbImpl) CreateArticle(ctx context.Context, owner string, blogID int64, article domain.ArticleCore) (int64, error) {
	log.Debug().
		Str("title", article.Title).
		Int64("blog", blogID).
		Msg("creating article")
	now := d.now().UnixNano()
	res, err := d.db.ExecContext(ctx, `
		INSERT INTO articles (blog_id, title, content, created, edited)
		SELECT b.id, ?, ?, ?, ? FROM blogs b
		JOIN profiles p ON p.id = b.profile_id
		JOIN users u ON u.id = p.user_id
		WHERE u.username = ? AND b.id = ?`,
		article.Title, article.Content, now, now, owner, blogID)
	if err != nil {
		return 0, d.HandleError(err)
	}
	if err = d.requireAffected(res); err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return id, d.HandleError(err)
}

func (d *dbImpl) GetArticle(ctx context.Context, owner string, blogID, id int64) (domain.Article, error) {
	a, err := scanArticle(d.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM `+articleSource+` WHERE `+ownedArticle, owner, blogID, id))
	if err != nil {
		return domain.Article{}, d.HandleError(err)
	}

	a.Attachments, err = d.ListAttachments(ctx, a.ID)
	if err != nil {
		return domain.Article{}, err
	}
	return a, nil
}

func (d *dbImpl) ListArticles(ctx context.Context, owner string, blogID int64) ([]domain.Article, error) {
	return d.listArticles(ctx, `SELECT `+articleColumns+` FROM `+articleSource+`
		WHERE u.username = ? AND b.id = ?
		ORDER BY a.created DESC, a.id DESC`, owner, blogID)
}

func (d *dbImpl) ListAllArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	return d.listArticles(ctx, `SELECT `+articleColumns+` FROM `+articleSource+`
		ORDER BY a.created DESC, a.id DESC
		LIMIT ?`, limit)
}

func (d *dbImpl) UpdateArticle(ctx context.Context, owner string, blogID, id, editorID int64, article domain.ArticleCore) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		var content string
		err := tx.QueryRowContext(ctx, `SELECT a.content FROM `+articleSource+` WHERE `+ownedArticle,
			owner, blogID, id).Scan(&content)
		if err != nil {
			return err
		}

		now := d.now().UnixNano()
		if content != article.Content {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO article_revisions (article_id, user_id, diff, created) VALUES (?, ?, ?, ?)`,
				id, editorID, d.getDiff(content, article.Content), now)
			if err != nil {
				return fmt.Errorf("failed to insert revision: %w", err)
			}
		}

		_, err = tx.ExecContext(ctx, `UPDATE articles SET title = ?, content = ?, edited = ? WHERE id = ?`,
			article.Title, article.Content, now, id)
		return err
	})
}

func (d *dbImpl) DeleteArticle(ctx context.Context, owner string, blogID, id int64) (keys []string, err error) {
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		var found int64
		err := tx.QueryRowContext(ctx, `SELECT a.id FROM `+articleSource+` WHERE `+ownedArticle,
			owner, blogID, id).Scan(&found)
		if err != nil {
			return err
		}

		keys, err = collectKeys(ctx, tx, `SELECT storage_key FROM attachments WHERE article_id = ?`, id)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (d *dbImpl) GetRevisionList(ctx context.Context, owner string, blogID, id int64) ([]domain.Revision, error) {
	var found int64
	err := d.db.QueryRowContext(ctx, `SELECT a.id FROM `+articleSource+` WHERE `+ownedArticle,
		owner, blogID, id).Scan(&found)
	if err != nil {
		return nil, d.HandleError(err)
	}

	rows, err := d.db.QueryContext(ctx, `
		SELECT r.id, r.article_id, u.username, r.diff, r.created
		FROM article_revisions r JOIN users u ON u.id = r.user_id
		WHERE r.article_id = ?
		ORDER BY r.created DESC, r.id DESC`, id)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	revisions := []domain.Revision{}
	for rows.Next() {
		var (
			r       domain.Revision
			created int64
		)
		if err := rows.Scan(&r.ID, &r.ArticleID, &r.Username, &r.Diff, &created); err != nil {
			return nil, d.HandleError(err)
		}
		r.Created = fromNanos(created)
		revisions = append(revisions, r)
	}
	return revisions, d.HandleError(rows.Err())
}

var _ db.Article = (*dbImpl)(nil)
