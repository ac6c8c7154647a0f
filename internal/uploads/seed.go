package uploads

import (
	"bytes"
	"image"
	"os"
	"path"
	"path/filepath"
)

// CopySeed places a local image file into the fixed seed partition
// as-is, keeping its original filename and bytes. Used only by the
// seeder; client uploads always go through Ingest.
func (s *Store) CopySeed(srcPath, filename string) (Result, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return Result{}, err
	}

	var width, height int
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width, height = cfg.Width, cfg.Height
	}

	dir := filepath.Join(s.root, SeedPartition)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, err
	}

	tmp, err := os.CreateTemp(dir, ".seed-*")
	if err != nil {
		return Result{}, err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return Result{}, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return Result{}, err
	}
	if err := os.Rename(tmpPath, filepath.Join(dir, filename)); err != nil {
		_ = os.Remove(tmpPath)
		return Result{}, err
	}

	return Result{
		URL:      URLPrefix + path.Join(SeedPartition, filename),
		Filename: filename,
		Width:    width,
		Height:   height,
	}, nil
}
