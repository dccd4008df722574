package web

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/templates"
)

func (h *Handler) profile(ctx context.Context, w http.ResponseWriter, r *http.Request, name string, status int, form templates.Form) error {
	p, err := h.service.GetProfile(ctx, name)
	if err != nil {
		return err
	}

	if form.Values == nil {
		form.Values = url.Values{
			"first_name": {p.FirstName},
			"last_name":  {p.LastName},
			"email":      {p.Email},
			"phone":      {p.Phone},
			"city":       {p.City},
		}
	}

	h.render(w, r, status, p.FullName(), templates.PlaceProfile, nil,
		templates.Profile(p, h.Config.MediaURL, canEdit(r, p.Username), form))
	return nil
}

func Profile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "username")
		if err := h.profile(r.Context(), w, r, name, http.StatusOK, templates.Form{}); err != nil {
			h.renderError(w, r, err)
		}
	}
}

// EditProfile applies the profile form. Fields missing from the form are stored empty; the avatar is only
// replaced when a new image is uploaded.
func EditProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		name := chi.URLParam(r, "username")
		if err := h.parseForm(w, r); err != nil {
			h.renderStatus(w, r, http.StatusBadRequest, "failed to parse form body")
			return
		}

		uploads, err := readUploads(r, "avatar")
		if err != nil {
			h.renderStatus(w, r, http.StatusBadRequest, "failed to read the uploaded file")
			return
		}
		var avatar *domain.Upload
		if len(uploads) > 0 {
			avatar = &uploads[0]
		}

		f := r.PostForm
		err = h.service.UpdateProfile(ctx, identity(ctx), name, domain.ProfileUpdate{
			FirstName: f.Get("first_name"),
			LastName:  f.Get("last_name"),
			Email:     f.Get("email"),
			Phone:     f.Get("phone"),
			City:      f.Get("city"),
		}, avatar)
		if err != nil {
			if !isFormError(err) {
				h.renderError(w, r, err)
				return
			}
			if err = h.profile(ctx, w, r, name, http.StatusOK, formFrom(r, err)); err != nil {
				h.renderError(w, r, err)
			}
			return
		}

		http.Redirect(w, r, domain.ProfilePath(name), http.StatusFound)
	}
}
