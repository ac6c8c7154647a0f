package uploads

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

// encodePNG produces a decodable width x height test image.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 100 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestIngestRejectsUnsupportedType(t *testing.T) {
	store := newStore(t)

	_, err := store.Ingest([]byte("hello"), "text/plain", 5)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

// TestIngestRejectsOversizeBeforeDecode passes undecodable bytes with an
// oversize declaration: getting ErrTooLarge (not a decode error) proves
// the size check runs first.
func TestIngestRejectsOversizeBeforeDecode(t *testing.T) {
	store := newStore(t)

	_, err := store.Ingest([]byte("not an image at all"), "image/jpeg", 15<<20)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestIngestRejectsUndecodableBytes(t *testing.T) {
	store := newStore(t)

	_, err := store.Ingest([]byte("not an image at all"), "image/jpeg", 19)
	if err == nil {
		t.Error("expected a decode error for garbage bytes")
	}
}

// TestIngestDownscales verifies the 2000px cap with aspect ratio kept.
func TestIngestDownscales(t *testing.T) {
	store := newStore(t)

	result, err := store.Ingest(encodePNG(t, 4000, 3000), "image/png", 0)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if result.Width != 2000 || result.Height != 1500 {
		t.Errorf("dimensions = %dx%d, want 2000x1500", result.Width, result.Height)
	}
}

func TestIngestDownscalesPortrait(t *testing.T) {
	store := newStore(t)

	result, err := store.Ingest(encodePNG(t, 1500, 3000), "image/png", 0)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if result.Width != 1000 || result.Height != 2000 {
		t.Errorf("dimensions = %dx%d, want 1000x2000", result.Width, result.Height)
	}
}

// TestIngestNeverUpscales verifies that an image already inside the cap
// keeps its dimensions.
func TestIngestNeverUpscales(t *testing.T) {
	store := newStore(t)

	result, err := store.Ingest(encodePNG(t, 400, 300), "image/png", 0)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if result.Width != 400 || result.Height != 300 {
		t.Errorf("dimensions = %dx%d, want 400x300 (no upscaling)", result.Width, result.Height)
	}
}

// TestIngestNormalizesFormat verifies every artifact lands as a JPEG in
// the current month's partition under a URL the serve route understands.
func TestIngestNormalizesFormat(t *testing.T) {
	store := newStore(t)

	result, err := store.Ingest(encodePNG(t, 400, 300), "image/png", 0)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	partition := time.Now().Format("2006-01")
	wantPrefix := URLPrefix + partition + "/"
	if !strings.HasPrefix(result.URL, wantPrefix) {
		t.Errorf("URL = %q, want prefix %q", result.URL, wantPrefix)
	}
	if !strings.HasSuffix(result.Filename, ".jpg") {
		t.Errorf("filename = %q, want .jpg extension", result.Filename)
	}

	data, err := os.ReadFile(filepath.Join(store.Root(), partition, result.Filename))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("stored file is not a JPEG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("stored dimensions = %dx%d, want 400x300", b.Dx(), b.Dy())
	}

	// No temp file left behind.
	entries, err := os.ReadDir(filepath.Join(store.Root(), partition))
	if err != nil {
		t.Fatalf("read partition: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("partition holds %d files, want 1", len(entries))
	}
}

func TestIngestUniqueFilenames(t *testing.T) {
	store := newStore(t)
	data := encodePNG(t, 10, 10)

	a, err := store.Ingest(data, "image/png", 0)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	b, err := store.Ingest(data, "image/png", 0)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if a.Filename == b.Filename {
		t.Error("two ingests of the same bytes produced the same filename")
	}
}

// TestRetireIdempotent verifies deletion succeeds, and succeeds again
// once the file is already gone.
func TestRetireIdempotent(t *testing.T) {
	store := newStore(t)

	result, err := store.Ingest(encodePNG(t, 10, 10), "image/png", 0)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	if err := store.Retire(result.URL); err != nil {
		t.Fatalf("first Retire failed: %v", err)
	}
	if err := store.Retire(result.URL); err != nil {
		t.Errorf("second Retire should be a no-op success, got %v", err)
	}
	if err := store.Retire(URLPrefix + "2020-01/never-existed.jpg"); err != nil {
		t.Errorf("Retire of an unknown reference should succeed, got %v", err)
	}
}

func TestRetireRejectsTraversal(t *testing.T) {
	store := newStore(t)

	victim := filepath.Join(filepath.Dir(store.Root()), "victim.txt")
	if err := os.WriteFile(victim, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("write victim: %v", err)
	}

	if err := store.Retire(URLPrefix + "../victim.txt"); err == nil {
		if _, statErr := os.Stat(victim); statErr != nil {
			t.Fatal("traversal deleted a file outside the upload root")
		}
	}
	if _, err := os.Stat(victim); err != nil {
		t.Error("file outside the upload root was removed")
	}
}
