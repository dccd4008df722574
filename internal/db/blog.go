package db

import (
	"context"

	"github.com/sidereusnuntius/blogs/internal/domain"
)

type Blogs interface {
	CreateBlog(ctx context.Context, owner, title, description string) (int64, error)
	GetBlog(ctx context.Context, owner string, id int64) (domain.Blog, error)
	// ListBlogs returns the owner's blogs, newest first.
	ListBlogs(ctx context.Context, owner string) ([]domain.Blog, error)
	UpdateBlog(ctx context.Context, owner string, id int64, title, description string) error
	// DeleteBlog removes the blog with its articles and attachments, returning the storage keys of the removed
	// attachments.
	DeleteBlog(ctx context.Context, owner string, id int64) (keys []string, err error)
}
