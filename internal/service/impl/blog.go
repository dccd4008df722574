package core

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/csvimport"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/service"
	"github.com/sidereusnuntius/blogs/internal/validate"
)

func (s *AppService) CreateBlog(ctx context.Context, current *domain.Identity, owner, title, description string) (int64, error) {
	if err := authorize(current, owner); err != nil {
		return 0, err
	}

	title = RemoveDuplicateSpaces(title)
	description = strings.TrimSpace(description)
	if err := validate.BlogForm(title, description); err != nil {
		return 0, invalid(err)
	}

	return s.DB.CreateBlog(ctx, owner, title, description)
}

func (s *AppService) GetBlog(ctx context.Context, owner string, id int64) (domain.Blog, error) {
	return s.DB.GetBlog(ctx, owner, id)
}

func (s *AppService) GetBlogPage(ctx context.Context, owner string, id int64) (page domain.BlogPage, err error) {
	page.Blog, err = s.DB.GetBlog(ctx, owner, id)
	if err != nil {
		return
	}
	page.Articles, err = s.DB.ListArticles(ctx, owner, id)
	return
}

func (s *AppService) UpdateBlog(ctx context.Context, current *domain.Identity, owner string, id int64, title, description string) error {
	if err := authorize(current, owner); err != nil {
		return err
	}

	title = RemoveDuplicateSpaces(title)
	description = strings.TrimSpace(description)
	if err := validate.BlogForm(title, description); err != nil {
		return invalid(err)
	}

	return s.DB.UpdateBlog(ctx, owner, id, title, description)
}

func (s *AppService) DeleteBlog(ctx context.Context, current *domain.Identity, id int64) error {
	if current == nil {
		return service.ErrForbidden
	}

	keys, err := s.DB.DeleteBlog(ctx, current.Username, id)
	if err != nil {
		return err
	}
	log.Info().Str("user", current.Username).Int64("blog", id).Int("files", len(keys)).Msg("deleted blog")
	s.cleanup(ctx, keys...)
	return nil
}

func (s *AppService) ImportArticles(ctx context.Context, current *domain.Identity, owner string, blogID int64, raw []byte) (csvimport.Result, error) {
	if err := authorize(current, owner); err != nil {
		return csvimport.Result{}, err
	}
	if _, err := s.DB.GetBlog(ctx, owner, blogID); err != nil {
		return csvimport.Result{}, err
	}

	// Rows are stored as parsed; only rows the parser rejects or the insert fails on are skipped.
	result, err := csvimport.Import(ctx, raw, func(ctx context.Context, row csvimport.Row) error {
		_, err := s.DB.CreateArticle(ctx, owner, blogID, domain.ArticleCore{
			Title:   row.Title,
			Content: row.Content,
		})
		return err
	})
	if errors.Is(err, csvimport.ErrDecode) {
		log.Warn().Str("user", owner).Int64("blog", blogID).Msg("csv payload could not be decoded")
	}

	log.Info().
		Str("user", owner).
		Int64("blog", blogID).
		Int("created", result.Created).
		Int("skipped", len(result.Skipped)).
		Msg("imported articles")
	return result, err
}

func RemoveDuplicateSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
