package web

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetFile serves an uploaded avatar or attachment by its storage key.
func GetFile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "*")
		file, meta, err := h.service.GetFile(r.Context(), key)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", meta.MimeType)
		w.Header().Set("Content-Length", strconv.Itoa(len(file)))
		w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": meta.Filename}))
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Write(file)
	}
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	dir := h.Config.StaticDir
	if !filepath.IsAbs(dir) {
		wd, _ := os.Getwd()
		dir = filepath.Join(wd, dir)
	}
	f := os.DirFS(dir)

	fileServer := http.FileServer(http.FS(f))
	r.Handle("/static/{name}", http.StripPrefix(
		"/static/",
		fileServer,
	))
}
