package service

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/csvimport"
	"github.com/sidereusnuntius/blogs/internal/domain"
)

type BlogService interface {
	CreateBlog(ctx context.Context, current *domain.Identity, owner, title, description string) (int64, error)
	// GetBlogPage returns the blog and its articles, newest first.
	GetBlogPage(ctx context.Context, owner string, id int64) (domain.BlogPage, error)
	GetBlog(ctx context.Context, owner string, id int64) (domain.Blog, error)
	UpdateBlog(ctx context.Context, current *domain.Identity, owner string, id int64, title, description string) error
	// DeleteBlog only ever deletes a blog of current; any other id yields db.ErrNotFound.
	DeleteBlog(ctx context.Context, current *domain.Identity, id int64) error
	// ImportArticles creates one article per valid CSV row. Rows are committed independently.
	ImportArticles(ctx context.Context, current *domain.Identity, owner string, blogID int64, raw []byte) (csvimport.Result, error)
}
