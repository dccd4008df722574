package db

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

type Article interface {
	CreateArticle(ctx context.Context, owner string, blogID int64, article domain.ArticleCore) (int64, error)
	// GetArticle returns the article together with its attachments.
	GetArticle(ctx context.Context, owner string, blogID, id int64) (domain.Article, error)
	// ListArticles returns the blog's articles, newest first.
	ListArticles(ctx context.Context, owner string, blogID int64) ([]domain.Article, error)
	// ListAllArticles returns the newest articles of every blog.
	ListAllArticles(ctx context.Context, limit int) ([]domain.Article, error)
	// UpdateArticle replaces the title and content and records a revision holding the patch from the previous
	// content to the new one.
	UpdateArticle(ctx context.Context, owner string, blogID, id, editorID int64, article domain.ArticleCore) error
	DeleteArticle(ctx context.Context, owner string, blogID, id int64) (keys []string, err error)
	GetRevisionList(ctx context.Context, owner string, blogID, id int64) ([]domain.Revision, error)
}
