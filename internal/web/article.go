package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/service"
	"github.com/sidereusnuntius/blogs/templates"
)

// articleParams reads the owner, blog id and, when withID is set, article id from the path.
func articleParams(r *http.Request, withID bool) (owner string, blogID, id int64, err error) {
	owner = chi.URLParam(r, "username")
	if blogID, err = pathID(r, "blogID"); err != nil || !withID {
		return
	}
	id, err = pathID(r, "articleID")
	return
}

func articleHrefs(r *http.Request, a domain.Article) map[templates.Place]string {
	path := a.Path()
	hrefs := map[templates.Place]string{
		templates.Read:    path,
		templates.History: path + "history/",
	}
	if canEdit(r, a.Owner) {
		hrefs[templates.Edit] = path + "edit/"
	}
	return hrefs
}

func GetCreateArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, blogID, _, err := articleParams(r, false)
		if err == nil {
			_, err = h.service.GetBlog(r.Context(), owner, blogID)
		}
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		h.render(w, r, http.StatusOK, "New article", templates.Edit, nil,
			templates.ArticleForm("New article", r.URL.Path, templates.Form{}))
	}
}

func CreateArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, blogID, _, err := articleParams(r, false)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		if err = h.parseForm(w, r); err != nil {
			h.renderStatus(w, r, http.StatusBadRequest, "failed to parse form body")
			return
		}

		uploads, err := readUploads(r, "attachments")
		if err != nil {
			h.renderStatus(w, r, http.StatusBadRequest, "failed to read the uploaded files")
			return
		}

		article := domain.ArticleCore{
			Title:   r.PostForm.Get("title"),
			Content: r.PostForm.Get("content"),
		}
		id, err := h.service.CreateArticle(ctx, identity(ctx), owner, blogID, article, uploads)
		if errors.Is(err, service.ErrAttachments) && id != 0 {
			h.attachmentsFailed(w, r, err, domain.ArticlePath(owner, blogID, id))
			return
		}
		if err != nil {
			if isFormError(err) {
				h.render(w, r, http.StatusOK, "New article", templates.Edit, nil,
					templates.ArticleForm("New article", r.URL.Path, formFrom(r, err)))
			} else {
				h.renderError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, domain.ArticlePath(owner, blogID, id), http.StatusFound)
	}
}

func GetArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, blogID, id, err := articleParams(r, true)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		article, err := h.service.GetArticle(r.Context(), owner, blogID, id)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		notice := h.popNotice(w, r)
		h.render(w, r, http.StatusOK, article.Title, templates.Read, articleHrefs(r, article),
			templates.Article(article, h.Config.MediaURL, canEdit(r, owner), notice))
	}
}

// attachmentsFailed sends the user to the saved article, which tells them that some files are missing.
func (h *Handler) attachmentsFailed(w http.ResponseWriter, r *http.Request, err error, articlePath string) {
	hlog.FromRequest(r).Error().Err(err).Str("article", articlePath).Msg("article saved without all attachments")
	h.putNotice(w, r, "The article was saved, but some attachments could not be stored. Please upload them again.")
	http.Redirect(w, r, articlePath, http.StatusFound)
}

// EditArticle renders the article editing screen, populated with the article's title and text.
func EditArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, blogID, id, err := articleParams(r, true)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		article, err := h.service.GetArticle(r.Context(), owner, blogID, id)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		form := templates.Form{Values: url.Values{
			"title":   {article.Title},
			"content": {article.Content},
		}}
		h.render(w, r, http.StatusOK, "Editing "+article.Title, templates.Edit, articleHrefs(r, article),
			templates.ArticleForm("Editing "+article.Title, r.URL.Path, form))
	}
}

// PostArticle saves an edit. New attachments are appended to the existing ones.
func PostArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, blogID, id, err := articleParams(r, true)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		if err = h.parseForm(w, r); err != nil {
			h.renderStatus(w, r, http.StatusBadRequest, "failed to parse form body")
			return
		}

		uploads, err := readUploads(r, "attachments")
		if err != nil {
			h.renderStatus(w, r, http.StatusBadRequest, "failed to read the uploaded files")
			return
		}

		article := domain.ArticleCore{
			Title:   r.PostForm.Get("title"),
			Content: r.PostForm.Get("content"),
		}
		err = h.service.UpdateArticle(ctx, identity(ctx), owner, blogID, id, article, uploads)
		if errors.Is(err, service.ErrAttachments) {
			h.attachmentsFailed(w, r, err, domain.ArticlePath(owner, blogID, id))
			return
		}
		if err != nil {
			if isFormError(err) {
				h.render(w, r, http.StatusOK, "Editing article", templates.Edit, nil,
					templates.ArticleForm("Editing article", r.URL.Path, formFrom(r, err)))
			} else {
				h.renderError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, domain.ArticlePath(owner, blogID, id), http.StatusFound)
	}
}

// DeleteArticle behaves like DeleteBlog: only the owner's request deletes anything, every request is
// redirected to the blog.
func DeleteArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, blogID, id, err := articleParams(r, true)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		if canEdit(r, owner) {
			err = h.service.DeleteArticle(ctx, identity(ctx), blogID, id)
			if err != nil && !errors.Is(err, db.ErrNotFound) {
				h.renderError(w, r, err)
				return
			}
		}
		http.Redirect(w, r, domain.BlogPath(owner, blogID), http.StatusFound)
	}
}

// ArticleHistory renders a template displaying all edits made to an article, if such article exists.
func ArticleHistory(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner, blogID, id, err := articleParams(r, true)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		article, err := h.service.GetArticle(ctx, owner, blogID, id)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		list, err := h.service.GetRevisionList(ctx, owner, blogID, id)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		h.render(w, r, http.StatusOK, "Revision history", templates.History, articleHrefs(r, article),
			templates.Revisions(article.Title, list))
	}
}
