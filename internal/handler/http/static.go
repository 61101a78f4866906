package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const indexFile = "index.html"

// staticDir returns dir if it is an existing directory, or an empty string
// which disables static file serving.
func staticDir(dir string, log *logger.Logger) string {
	if dir == "" {
		return ""
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Warn().Str("dir", dir).Msg("static directory is not available, serving API only")
		return ""
	}
	return dir
}

// notFound serves the frontend for non-API GET requests when a static
// directory is configured, falling back to index.html so client-side routes
// work. Everything else gets the JSON "Route not found".
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	dir := h.staticDir
	if dir == "" || isAPIPath(r.URL.Path) || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		routeNotFound(w, r)
		return
	}

	name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err != nil || info.IsDir() {
		name = filepath.Join(dir, indexFile)
	}

	http.ServeFile(w, r, name)
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
