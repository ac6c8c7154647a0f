package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	// Decoder registration for the two allowed formats the stdlib
	// doesn't handle.
	_ "github.com/gen2brain/avif"
	_ "golang.org/x/image/webp"
)

const (
	// URLPrefix is the public route every artifact reference lives under.
	URLPrefix = "/api/uploads/"

	// SeedPartition holds pre-seeded assets instead of a month bucket.
	SeedPartition = "seed"

	// MaxFileSize is the upload ceiling, enforced before any decode work.
	MaxFileSize  = 10 << 20 // 10MB
	maxDimension = 2000
	jpegQuality  = 85
)

var (
	ErrUnsupportedType = errors.New("invalid file type. Allowed: JPEG, PNG, WebP, AVIF")
	ErrTooLarge        = errors.New("file too large. Maximum size is 10MB")
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/avif": {},
}

// Result describes one persisted artifact.
type Result struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Store persists normalized image artifacts under a single root
// directory, partitioned by calendar month.
type Store struct {
	root string
}

// NewStore creates the store rooted at root (created if missing).
func NewStore(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("upload root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute uploads directory.
func (s *Store) Root() string { return s.root }

// Ingest validates an upload, normalizes it (fit within 2000x2000, no
// upscaling, re-encoded as JPEG q85 regardless of input format) and
// writes it under the current month's partition. The declared type and
// size are checked before any decode work so an oversized payload is
// never parsed. The returned dimensions are those of the stored file.
func (s *Store) Ingest(data []byte, mimeType string, size int64) (Result, error) {
	if _, ok := allowedTypes[strings.ToLower(mimeType)]; !ok {
		return Result{}, ErrUnsupportedType
	}
	if size > MaxFileSize || int64(len(data)) > MaxFileSize {
		return Result{}, ErrTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Result{}, fmt.Errorf("decode image: %w", err)
	}

	// Fit scales down only; smaller images pass through unchanged.
	img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	bounds := img.Bounds()

	filename := uuid.NewString() + ".jpg"
	partition := time.Now().Format("2006-01")

	if err := s.write(partition, filename, img); err != nil {
		return Result{}, err
	}

	return Result{
		URL:      URLPrefix + path.Join(partition, filename),
		Filename: filename,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

// write encodes img into <root>/<partition>/<filename> via a temp file
// and rename, so a half-written artifact is never visible at its final
// path.
func (s *Store) write(partition, filename string, img image.Image) error {
	dir := filepath.Join(s.root, partition)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ingest-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := jpeg.Encode(tmp, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, filepath.Join(dir, filename)); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Retire removes the stored file behind a previously issued reference
// URL. A reference whose file is already gone is success, so callers
// can retire blindly when deleting owning rows.
func (s *Store) Retire(url string) error {
	full, err := s.resolve(strings.TrimPrefix(url, URLPrefix))
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// resolve maps a partition-relative reference to an absolute path under
// the root, rejecting anything that escapes it.
func (s *Store) resolve(rel string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if full != s.root && !strings.HasPrefix(full, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes upload root")
	}
	return full, nil
}
