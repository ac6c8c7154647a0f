package uploads

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
	"github.com/go-chi/chi/v5"
)

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".avif": "image/avif",
	".gif":  "image/gif",
}

// ServeHandler serves stored artifacts under /api/uploads/*. References
// are immutable (random filenames), so responses are cached forever.
func ServeHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel := chi.URLParam(r, "*")

		full, err := store.resolve(rel)
		if err != nil {
			utils.WriteError(w, http.StatusForbidden, "Forbidden")
			return
		}

		contentType, ok := contentTypes[strings.ToLower(filepath.Ext(full))]
		if !ok {
			contentType = "application/octet-stream"
		}

		f, err := os.Open(full)
		if err != nil {
			utils.WriteError(w, http.StatusNotFound, "File not found")
			return
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil || stat.IsDir() {
			utils.WriteError(w, http.StatusNotFound, "File not found")
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
	}
}
