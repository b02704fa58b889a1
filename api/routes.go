package api

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"domain-swap/history"
	"domain-swap/preset"
)

func RegisterRoutes(hm *history.Manager, pm *preset.Manager, staticFS fs.FS) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{history: hm, presets: pm}

	// Rewrite core
	r.Post("/api/replace", h.replaceDomains)
	r.Post("/api/extract", h.extractDomain)

	// History
	r.Get("/api/history", h.listHistory)
	r.Delete("/api/history", h.clearHistory)
	r.Get("/api/history/{id}", h.getHistoryEntry)
	r.Delete("/api/history/{id}", h.deleteHistoryEntry)

	// Presets
	r.Get("/api/presets", h.listPresets)
	r.Post("/api/presets", h.savePreset)
	r.Get("/api/presets/{id}", h.getPreset)
	r.Delete("/api/presets/{id}", h.deletePreset)

	// Live auto-extract suggestions
	r.Get("/api/suggest/ws", h.handleSuggestWS)

	// Static sub-FS: strip the "static/" prefix present in the embed.FS.
	// In tests staticFS is already rooted at the page directory, so Sub
	// would look for static/index.html which doesn't exist. Probe
	// index.html to detect this.
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		staticSub = staticFS
	} else if _, statErr := fs.Stat(staticSub, "index.html"); statErr != nil {
		staticSub = staticFS
	}

	// Serve the page by reading from the FS directly. Using
	// http.FileServer with a path ending in "index.html" triggers Go's
	// built-in redirect to "./" — avoid that by reading the file manually.
	r.Get("/", serveFile(staticSub, "index.html"))

	return r
}

// serveFile returns a handler that reads a single file from fsys and sends it.
func serveFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}
}

type handler struct {
	history *history.Manager
	presets *preset.Manager
}
