package web

import (
	"net/http"

	"github.com/sidereusnuntius/blogs/templates"
)

func Home(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := h.service.RecentArticles(r.Context())
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		h.render(w, r, http.StatusOK, h.Config.Name, templates.PlaceHome, nil, templates.Home(articles))
	}
}
