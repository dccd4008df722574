package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/service"
	"github.com/sidereusnuntius/blogs/internal/validate"
)

func cleanArticle(article domain.ArticleCore) (domain.ArticleCore, error) {
	article.Title = RemoveDuplicateSpaces(article.Title)
	article.Content = strings.TrimSpace(article.Content)
	if err := validate.ArticleForm(article.Title, article.Content); err != nil {
		return article, invalid(err)
	}
	return article, nil
}

// CreateArticle creates the article in the owner's blog, then appends the uploaded files to it. The article
// stays when a file cannot be stored; the id is returned along with ErrAttachments.
func (s *AppService) CreateArticle(ctx context.Context, current *domain.Identity, owner string, blogID int64, article domain.ArticleCore, uploads []domain.Upload) (int64, error) {
	if err := authorize(current, owner); err != nil {
		return 0, err
	}

	article, err := cleanArticle(article)
	if err != nil {
		return 0, err
	}

	id, err := s.DB.CreateArticle(ctx, owner, blogID, article)
	if err != nil {
		return 0, err
	}
	if err = s.attach(ctx, id, uploads); err != nil {
		return id, fmt.Errorf("%w: %w", service.ErrAttachments, err)
	}
	return id, nil
}

func (s *AppService) GetArticle(ctx context.Context, owner string, blogID, id int64) (domain.Article, error) {
	return s.DB.GetArticle(ctx, owner, blogID, id)
}

func (s *AppService) UpdateArticle(ctx context.Context, current *domain.Identity, owner string, blogID, id int64, article domain.ArticleCore, uploads []domain.Upload) error {
	if err := authorize(current, owner); err != nil {
		return err
	}

	article, err := cleanArticle(article)
	if err != nil {
		return err
	}

	if err = s.DB.UpdateArticle(ctx, owner, blogID, id, current.UserID, article); err != nil {
		return err
	}
	if err = s.attach(ctx, id, uploads); err != nil {
		return fmt.Errorf("%w: %w", service.ErrAttachments, err)
	}
	return nil
}

func (s *AppService) DeleteArticle(ctx context.Context, current *domain.Identity, blogID, id int64) error {
	if current == nil {
		return service.ErrForbidden
	}

	keys, err := s.DB.DeleteArticle(ctx, current.Username, blogID, id)
	if err != nil {
		return err
	}
	log.Info().Str("user", current.Username).Int64("article", id).Int("files", len(keys)).Msg("deleted article")
	s.cleanup(ctx, keys...)
	return nil
}

func (s *AppService) GetRevisionList(ctx context.Context, owner string, blogID, id int64) ([]domain.Revision, error) {
	return s.DB.GetRevisionList(ctx, owner, blogID, id)
}

func (s *AppService) RecentArticles(ctx context.Context) ([]domain.Article, error) {
	return s.DB.ListAllArticles(ctx, service.HomeFeedSize)
}

// attach stores every upload and appends it to the article. It stops at the first failure; files attached
// before it are kept.
func (s *AppService) attach(ctx context.Context, articleID int64, uploads []domain.Upload) error {
	for _, u := range uploads {
		if u.Type == "" {
			u.Type = domain.DocumentType
			if strings.HasPrefix(u.MimeType, "image/") {
				u.Type = domain.ImageType
			}
		}

		file, err := s.store(u)
		if err != nil {
			return err
		}

		if _, err = s.DB.AddAttachment(ctx, articleID, file); err != nil {
			s.discard(file)
			return err
		}
	}
	return nil
}
