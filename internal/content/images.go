package content

import (
	"errors"
	"io"
	"net/http"

	"github.com/bartek-filipiuk/dw-zizi/internal/uploads"
	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
)

// ingestFormImage pulls the "image" file out of a multipart body and
// runs it through the pipeline. It writes the error response itself and
// returns ok=false when the request is already answered; a request with
// no file attached is fine and yields (nil, true).
func ingestFormImage(w http.ResponseWriter, r *http.Request, store *uploads.Store) (*uploads.Result, bool) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid multipart body")
		return nil, false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, true
	}
	defer file.Close()

	// Reject on the declared size without buffering the payload.
	if header.Size > uploads.MaxFileSize {
		utils.WriteError(w, http.StatusRequestEntityTooLarge, uploads.ErrTooLarge.Error())
		return nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to read upload")
		return nil, false
	}

	result, err := store.Ingest(data, header.Header.Get("Content-Type"), header.Size)
	switch {
	case errors.Is(err, uploads.ErrUnsupportedType):
		utils.WriteError(w, http.StatusUnsupportedMediaType, err.Error())
		return nil, false
	case errors.Is(err, uploads.ErrTooLarge):
		utils.WriteError(w, http.StatusRequestEntityTooLarge, err.Error())
		return nil, false
	case err != nil:
		utils.WriteError(w, http.StatusInternalServerError, "Failed to process image")
		return nil, false
	}

	return &result, true
}

func formValueOr(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}
