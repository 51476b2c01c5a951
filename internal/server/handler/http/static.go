package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// StaticHandler serves files from dir and falls back to dir/index.html
// for any path that is not an existing regular file.
func StaticHandler(dir string) http.HandlerFunc {
	index := filepath.Join(dir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err == nil && info.Mode().IsRegular() {
			http.ServeFile(w, r, name)
			return
		}
		http.ServeFile(w, r, index)
	}
}

// apiNotFound keeps unknown /api/ paths out of the front-end fallback.
func apiNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}
