package service

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

// HomeFeedSize is the number of articles listed on the home page.
const HomeFeedSize = 100

type ArticleService interface {
	// CreateArticle creates the article and appends every upload to it as an attachment.
	CreateArticle(ctx context.Context, current *domain.Identity, owner string, blogID int64, article domain.ArticleCore, uploads []domain.Upload) (int64, error)
	GetArticle(ctx context.Context, owner string, blogID, id int64) (domain.Article, error)
	// UpdateArticle records a revision and appends the uploads; existing attachments are kept.
	UpdateArticle(ctx context.Context, current *domain.Identity, owner string, blogID, id int64, article domain.ArticleCore, uploads []domain.Upload) error
	// DeleteArticle only ever deletes an article of current; any other id yields db.ErrNotFound.
	DeleteArticle(ctx context.Context, current *domain.Identity, blogID, id int64) error
	GetRevisionList(ctx context.Context, owner string, blogID, id int64) ([]domain.Revision, error)
	// RecentArticles returns the newest articles of every blog.
	RecentArticles(ctx context.Context) ([]domain.Article, error)
}
