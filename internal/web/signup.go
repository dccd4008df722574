package web

import (
	"errors"
	"net/http"

	"github.com/sidereusnuntius/blogs/internal/csvimport"
	"github.com/sidereusnuntius/blogs/internal/db"
	"github.com/sidereusnuntius/blogs/internal/service"
	"github.com/sidereusnuntius/blogs/internal/storage"
	"github.com/sidereusnuntius/blogs/templates"
)

func SignUp(h *Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			renderSignup(h, w, r, http.StatusBadRequest, errors.New("failed to parse form body"))
			return
		}

		f := r.PostForm
		u, err := h.service.CreateUser(ctx, service.SignUp{
			Username:  f.Get("username"),
			Password1: f.Get("password1"),
			Password2: f.Get("password2"),
			Email:     f.Get("email"),
			FirstName: f.Get("first_name"),
			LastName:  f.Get("last_name"),
			Phone:     f.Get("phone"),
			City:      f.Get("city"),
		})
		if err != nil {
			if isFormError(err) {
				renderSignup(h, w, r, http.StatusOK, err)
			} else {
				h.renderError(w, r, err)
			}
			return
		}

		if err = h.logIn(w, r, u); err != nil {
			h.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	})
}

func renderSignup(h *Handler, w http.ResponseWriter, r *http.Request, status int, err error) {
	h.render(w, r, status, "Register", templates.PlaceSignup, nil, templates.SignUp(RegisterRoute, formFrom(r, err)))
}

func GetSignup(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderSignup(handler, w, r, http.StatusOK, nil)
	}
}

// GetCode maps an error returned by the service layer to an HTTP status code.
func GetCode(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound), errors.Is(err, storage.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrConflict), errors.Is(err, csvimport.ErrDecode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
