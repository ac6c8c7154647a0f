package content_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bartek-filipiuk/dw-zizi/internal/content"
	"github.com/bartek-filipiuk/dw-zizi/internal/uploads"
	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
)

// denyAll rejects every request, standing in for the token manager.
type denyAll struct{}

func (denyAll) Resolve(w http.ResponseWriter, r *http.Request) (utils.Identity, bool) {
	return utils.Identity{}, false
}

// TestMutationsAreGated verifies that every mutating content route, and
// every submissions route, answers 401 to an unauthenticated request
// before any handler work happens.
func TestMutationsAreGated(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	router := content.SetupRoutes(denyAll{}, store)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/sections/some-id"},
		{http.MethodDelete, "/sections/some-id?imageId=x"},
		{http.MethodPost, "/gallery"},
		{http.MethodPut, "/gallery/some-id"},
		{http.MethodDelete, "/gallery/some-id"},
		{http.MethodPost, "/menu"},
		{http.MethodPut, "/menu/some-id"},
		{http.MethodDelete, "/menu/some-id"},
		{http.MethodPut, "/settings"},
		{http.MethodGet, "/submissions"},
		{http.MethodGet, "/submissions/some-id"},
		{http.MethodDelete, "/submissions/some-id"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", route.method, route.path, rec.Code)
		}
	}
}
