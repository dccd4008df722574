package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/sidereusnuntius/blogs/internal/access"
	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/internal/validate"
	"github.com/sidereusnuntius/blogs/templates"
)

const defaultMaxUpload = 32 << 20

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title string, place templates.Place, hrefs map[templates.Place]string, child templ.Component) {
	s, ok := GetSession(r.Context())
	var profile string
	if ok {
		profile = domain.ProfilePath(s.Username)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := templates.Layout(templates.PageData{
		Authenticated: ok,
		Username:      s.Username,
		ProfilePath:   profile,
		PageTitle:     title,
		Place:         place,
		Path:          r.URL,
		Hrefs:         hrefs,
		Child:         child,
	}).Render(r.Context(), w)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to render page")
	}
}

func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, code int, detail string) {
	h.render(w, r, code, http.StatusText(code), templates.PlaceError, nil, templates.Status(code, detail))
}

// renderError renders the page matching err's status code. Only unexpected errors are logged.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := GetCode(err)
	if code == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
	}
	h.renderStatus(w, r, code, "")
}

// isFormError reports whether err should be shown next to the submitted form instead of on an error page.
func isFormError(err error) bool {
	var fields validate.FieldErrors
	return errors.As(err, &fields)
}

// formFrom builds the form to redisplay from the submitted values and the error they caused.
func formFrom(r *http.Request, err error) templates.Form {
	f := templates.Form{Values: r.PostForm}
	var fields validate.FieldErrors
	switch {
	case errors.As(err, &fields):
		f.Errors = fields
	case err != nil:
		f.Message = err.Error()
	}
	return f
}

// parseForm parses urlencoded and multipart bodies alike, refusing bodies over the configured upload limit.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	limit := h.Config.MaxUploadBytes
	if limit <= 0 {
		limit = defaultMaxUpload
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(MaxMemory)
	}
	return r.ParseForm()
}

// readUploads reads every file sent in field. The MIME type is sniffed from the content.
func readUploads(r *http.Request, field string) ([]domain.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var uploads []domain.Upload
	for _, header := range r.MultipartForm.File[field] {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		uploads = append(uploads, domain.Upload{
			FileMetadata: domain.FileMetadata{
				Filename:  header.Filename,
				MimeType:  http.DetectContentType(body),
				SizeBytes: int64(len(body)),
			},
			Content: body,
		})
	}
	return uploads, nil
}

// pathID parses an integer URL parameter. A malformed id names no resource.
func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, db.ErrNotFound
	}
	return id, nil
}

// canEdit decides whether owner's resources are shown with their edit controls.
func canEdit(r *http.Request, owner string) bool {
	return access.HasAccess(identity(r.Context()), access.ResourceOwner{Username: owner})
}
