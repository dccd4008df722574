package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/sidereusnuntius/blogs/internal/csvimport"
	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/validate"
	"github.com/sidereusnuntius/blogs/templates"
)

func GetCreateBlog(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, "New blog", templates.PlaceBlog, nil,
			templates.BlogForm("New blog", r.URL.Path, templates.Form{}))
	}
}

func CreateBlog(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := chi.URLParam(r, "username")
		if err := h.parseForm(w, r); err != nil {
			h.renderStatus(w, r, http.StatusBadRequest, "failed to parse form body")
			return
		}

		id, err := h.service.CreateBlog(ctx, identity(ctx), owner, r.PostForm.Get("title"), r.PostForm.Get("description"))
		if err != nil {
			if isFormError(err) {
				h.render(w, r, http.StatusOK, "New blog", templates.PlaceBlog, nil,
					templates.BlogForm("New blog", r.URL.Path, formFrom(r, err)))
			} else {
				h.renderError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, domain.BlogPath(owner, id), http.StatusFound)
	}
}

func (h *Handler) blogPage(w http.ResponseWriter, r *http.Request, status int, result *csvimport.Result, form templates.Form) {
	owner := chi.URLParam(r, "username")
	id, err := pathID(r, "blogID")
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page, err := h.service.GetBlogPage(r.Context(), owner, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, status, page.Title, templates.PlaceBlog, nil,
		templates.Blog(page, canEdit(r, owner), result, form))
}

// GetBlog renders the blog with its articles, and with the report of an import that just redirected here.
func GetBlog(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, ok := h.popImportReport(w, r)
		if !ok {
			h.blogPage(w, r, http.StatusOK, nil, templates.Form{})
			return
		}

		var form templates.Form
		if report.Undecodable {
			form.Message = "The file is neither UTF-8 nor Windows-1251 text; no articles were imported."
		}
		result := report.result()
		h.blogPage(w, r, http.StatusOK, &result, form)
	}
}

// ImportArticles creates articles from the uploaded CSV file, then redirects to the blog, which shows the
// import report once. Rows that could not be imported are listed in the report; an undecodable file imports
// nothing.
func ImportArticles(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := chi.URLParam(r, "username")
		id, err := pathID(r, "blogID")
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		if err = h.parseForm(w, r); err != nil {
			h.renderStatus(w, r, http.StatusBadRequest, "failed to parse form body")
			return
		}

		uploads, err := readUploads(r, "file")
		if err != nil || len(uploads) == 0 {
			form := templates.Form{Values: url.Values{}, Errors: validate.FieldErrors{"file": "this field is required"}}
			h.blogPage(w, r, http.StatusOK, nil, form)
			return
		}

		result, err := h.service.ImportArticles(ctx, identity(ctx), owner, id, uploads[0].Content)
		recordImport(result, err)
		if err != nil && !errors.Is(err, csvimport.ErrDecode) {
			h.renderError(w, r, err)
			return
		}

		hlog.FromRequest(r).Info().
			Str("blog", domain.BlogPath(owner, id)).
			Int("created", result.Created).
			Int("skipped", len(result.Skipped)).
			Bool("undecodable", err != nil).
			Msg("csv import finished")
		h.putImportReport(w, r, newImportReport(result, err))
		http.Redirect(w, r, domain.BlogPath(owner, id), http.StatusFound)
	}
}

func GetEditBlog(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := chi.URLParam(r, "username")
		id, err := pathID(r, "blogID")
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		b, err := h.service.GetBlog(r.Context(), owner, id)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		form := templates.Form{Values: url.Values{
			"title":       {b.Title},
			"description": {b.Description},
		}}
		h.render(w, r, http.StatusOK, "Editing "+b.Title, templates.PlaceBlog, nil,
			templates.BlogForm("Editing "+b.Title, r.URL.Path, form))
	}
}

func EditBlog(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := chi.URLParam(r, "username")
		id, err := pathID(r, "blogID")
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		if err = h.parseForm(w, r); err != nil {
			h.renderStatus(w, r, http.StatusBadRequest, "failed to parse form body")
			return
		}

		err = h.service.UpdateBlog(ctx, identity(ctx), owner, id, r.PostForm.Get("title"), r.PostForm.Get("description"))
		if err != nil {
			if isFormError(err) {
				h.render(w, r, http.StatusOK, "Editing blog", templates.PlaceBlog, nil,
					templates.BlogForm("Editing blog", r.URL.Path, formFrom(r, err)))
			} else {
				h.renderError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, domain.BlogPath(owner, id), http.StatusFound)
	}
}

// DeleteBlog deletes the blog if it belongs to the logged in user. Requests for anybody else's blog change
// nothing and are redirected like successful ones; the deletion itself is also filtered by the logged in
// user's name.
func DeleteBlog(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		owner := chi.URLParam(r, "username")
		id, err := pathID(r, "blogID")
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		if !canEdit(r, owner) {
			http.Redirect(w, r, domain.ProfilePath(owner), http.StatusFound)
			return
		}

		err = h.service.DeleteBlog(ctx, identity(ctx), id)
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			h.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, domain.ProfilePath(owner), http.StatusFound)
	}
}
