package web

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/hlog"
	"github.com/sidereusnuntius/blogs/internal/access"
	"github.com/sidereusnuntius/blogs/internal/domain"
	"github.com/sidereusnuntius/blogs/templates"
)

const SessionKey = "user"

type Session struct {
	UserID   int64
	Username string
}

func (s Session) Identity() *domain.Identity {
	return &domain.Identity{UserID: s.UserID, Username: s.Username}
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

// identity returns nil when nobody is logged in.
func identity(ctx context.Context) *domain.Identity {
	s, ok := GetSession(ctx)
	if !ok {
		return nil
	}
	return s.Identity()
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := r.Context()
				ctx = context.WithValue(ctx, key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

// RequireAccess lets a request through only if the logged in user has access to the scope resolve derives from
// it. Anonymous users are sent to the login page, which brings them back afterwards; users without access get
// a 403 page.
func RequireAccess(handler *Handler, resolve access.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := identity(r.Context())
			if current == nil {
				accessDenied.WithLabelValues("unauthenticated").Inc()
				redirectToLogin(w, r)
				return
			}

			if !access.HasAccess(current, resolve(r)) {
				accessDenied.WithLabelValues("forbidden").Inc()
				hlog.FromRequest(r).Info().
					Str("user", current.Username).
					Str("path", r.URL.Path).
					Msg("access denied")
				handler.renderStatus(w, r, http.StatusForbidden, "You are not allowed to change this resource.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, LoginRoute+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
}

// safeNext only accepts local paths, so the login form cannot be used as an open redirect.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return "/"
	}
	return next
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := handler.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("failed to destroy session")
		}

		r = r.WithContext(context.WithValue(r.Context(), key{}, nil))
		handler.render(w, r, http.StatusOK, "Logged out", templates.Auth, nil, templates.LoggedOut())
	}
}

func Login(handler *Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			renderLogin(handler, w, r, http.StatusBadRequest, "", "failed to parse form body")
			return
		}

		next := r.PostForm.Get("next")
		username := r.PostForm.Get("username")
		password := r.PostForm.Get("password")
		u, authenticated, err := handler.service.AuthenticateUser(ctx, username, password)
		if err != nil && GetCode(err) == http.StatusInternalServerError {
			handler.renderError(w, r, err)
			return
		}

		if err != nil || !authenticated {
			renderLogin(handler, w, r, http.StatusOK, next,
				"Please enter a correct username and password. Note that both fields may be case-sensitive.")
			return
		}

		if err = handler.logIn(w, r, u); err != nil {
			handler.renderError(w, r, err)
			return
		}
		http.Redirect(w, r, safeNext(next), http.StatusFound)
	})
}

func (h *Handler) logIn(w http.ResponseWriter, r *http.Request, u domain.Account) error {
	session := h.SessionManager.Load(r)
	err := session.PutObject(w, SessionKey, Session{
		UserID:   u.UserID,
		Username: u.Username,
	})
	if err != nil {
		return err
	}
	hlog.FromRequest(r).Info().Str("user", u.Username).Msg("logged in")
	return nil
}

func GetLogin(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderLogin(handler, w, r, http.StatusOK, r.URL.Query().Get("next"), "")
	}
}

func renderLogin(h *Handler, w http.ResponseWriter, r *http.Request, status int, next, message string) {
	form := templates.Form{Values: r.PostForm, Message: message}
	h.render(w, r, status, "Log in", templates.Auth, nil, templates.Login(LoginRoute, next, form))
}
