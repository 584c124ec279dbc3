package http

import (
	"io"
	"net/http"
	"os"
	"path"
	"strings"
)

// ShellHandler serves a dashboard's embedded assets and falls back to the
// pre-rendered shell page for every other path
type ShellHandler struct {
	fileSystem http.FileSystem
	page       []byte
}

// NewShellHandler creates a shell handler. Only files under /assets/ are
// served from filesystem.
func NewShellHandler(filesystem http.FileSystem, page []byte) *ShellHandler {
	return &ShellHandler{
		fileSystem: filesystem,
		page:       page,
	}
}

// ServeHTTP implements the http.Handler interface. r.URL.Path is relative to
// the dashboard prefix.
func (h *ShellHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean the path to prevent directory traversal attacks.
	cleanPath := path.Clean("/" + r.URL.Path)

	if !strings.HasPrefix(cleanPath, "/assets/") {
		h.servePage(w)
		return
	}

	file, err := h.fileSystem.Open(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	h.serveFile(w, file, cleanPath)
}

// serveFile serves a specific file with appropriate headers
func (h *ShellHandler) serveFile(w http.ResponseWriter, file http.File, filePath string) {
	if contentType := getContentType(filePath); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=300")

	if _, err := io.Copy(w, file); err != nil {
		http.Error(w, "Failed to serve file", http.StatusInternalServerError)
		return
	}
}

func (h *ShellHandler) servePage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.page)
}

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// getContentType returns the content type for common file extensions
func getContentType(filePath string) string {
	return mimeTypes[path.Ext(filePath)]
}
