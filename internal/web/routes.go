package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blogs/internal/access"
)

func (h *Handler) Mount(r chi.Router) {
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.RequestIDHandler("req_id", "Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(SessionMiddleware(h))

	owner := RequireAccess(h, access.PathOwner("username"))
	authenticated := RequireAccess(h, access.Anyone)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.renderStatus(w, r, http.StatusNotFound, "")
	})

	r.Get("/", Home(h))
	r.Get(RegisterRoute, GetSignup(h))
	r.Post(RegisterRoute, SignUp(h))
	r.Get(LoginRoute, GetLogin(h))
	r.Post(LoginRoute, Login(h))
	r.Get(LogoutRoute, Logout(h))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/{username}", func(r chi.Router) {
		r.Get("/", Profile(h))
		r.With(owner).Post("/", EditProfile(h))
		r.With(owner).Get("/blog/create/", GetCreateBlog(h))
		r.With(owner).Post("/blog/create/", CreateBlog(h))

		r.Route("/blog/{blogID}", func(r chi.Router) {
			r.Get("/", GetBlog(h))
			r.With(owner).Post("/", ImportArticles(h))
			r.With(owner).Get("/edit/", GetEditBlog(h))
			r.With(owner).Post("/edit/", EditBlog(h))
			r.With(authenticated).Get("/delete/", DeleteBlog(h))
			r.With(owner).Get("/article/create/", GetCreateArticle(h))
			r.With(owner).Post("/article/create/", CreateArticle(h))

			r.Route("/article/{articleID}", func(r chi.Router) {
				r.Get("/", GetArticle(h))
				r.With(owner).Get("/edit/", EditArticle(h))
				r.With(owner).Post("/edit/", PostArticle(h))
				r.With(authenticated).Get("/delete/", DeleteArticle(h))
				r.Get("/history/", ArticleHistory(h))
			})
		})
	})

	if media := h.Config.MediaURL; strings.HasPrefix(media, "/") {
		r.Get(strings.TrimSuffix(media, "/")+"/*", GetFile(h))
	}
	h.MountStaticRoutes(r)
}
