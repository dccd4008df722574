package impl

import (
	"context"
	"mime"
	"path"
	"strings"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

func (d *dbImpl) AddAttachment(ctx context.Context, articleID int64, file domain.File) (int64, error) {
	res, err := d.db.ExecContext(ctx, `
		INSERT INTO attachments (article_id, storage_key, filename, mime_type, size_bytes, created)
		VALUES (?, ?, ?, ?, ?, ?)`,
		articleID, file.Key, file.Filename, file.MimeType, file.SizeBytes, d.now().UnixNano())
	if err != nil {
		return 0, d.HandleError(err)
	}
	id, err := res.LastInsertId()
	return id, d.HandleError(err)
}

func (d *dbImpl) ListAttachments(ctx context.Context, articleID int64) ([]domain.Attachment, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, article_id, storage_key, filename, mime_type, size_bytes, created
		FROM attachments WHERE article_id = ? ORDER BY id`, articleID)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	attachments := []domain.Attachment{}
	for rows.Next() {
		var (
			a       domain.Attachment
			created int64
		)
		err := rows.Scan(&a.ID, &a.ArticleID, &a.Key, &a.Filename, &a.MimeType, &a.SizeBytes, &created)
		if err != nil {
			return nil, d.HandleError(err)
		}
		a.Created = fromNanos(created)
		a.Type = fileType(a.MimeType)
		attachments = append(attachments, a)
	}
	return attachments, d.HandleError(rows.Err())
}

func (d *dbImpl) GetFile(ctx context.Context, key string) (file domain.File, err error) {
	err = d.db.QueryRowContext(ctx, `
		SELECT storage_key, filename, mime_type, size_bytes FROM avatars WHERE storage_key = ?
		UNION ALL
		SELECT storage_key, filename, mime_type, size_bytes FROM attachments WHERE storage_key = ?
		LIMIT 1`, key, key).
		Scan(&file.Key, &file.Filename, &file.MimeType, &file.SizeBytes)
	if err != nil {
		return domain.File{}, d.HandleError(err)
	}
	if file.MimeType == "" {
		file.MimeType = mime.TypeByExtension(path.Ext(file.Filename))
	}
	file.Type = fileType(file.MimeType)
	return file, nil
}

func fileType(mimeType string) string {
	if strings.HasPrefix(mimeType, "image/") {
		return domain.ImageType
	}
	return domain.DocumentType
}
