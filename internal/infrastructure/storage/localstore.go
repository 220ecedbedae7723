package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"servicedesk/internal/shared/config"
)

// LocalStore writes uploaded files under the configured uploads directory,
// one subdirectory per day. Stored names are timestamped to avoid clashes;
// the original name is preserved in the attachment record.
type LocalStore struct {
	dir      string
	maxBytes int64
}

func NewLocalStore(cfg config.UploadConfig) *LocalStore {
	return &LocalStore{
		dir:      cfg.Dir,
		maxBytes: int64(cfg.MaxSizeMB) << 20,
	}
}

// Save writes the stream to disk and returns the stored relative path.
func (s *LocalStore) Save(fileName string, r io.Reader) (string, error) {
	day := time.Now().Format("20060102")
	dir := filepath.Join(s.dir, day)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	stored := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeName(fileName))
	path := filepath.Join(dir, stored)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(path)
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.maxBytes)
	}

	return filepath.Join(day, stored), nil
}

// Open opens a previously stored file by its relative path.
func (s *LocalStore) Open(relPath string) (io.ReadCloser, error) {
	clean := filepath.Clean(relPath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid attachment path")
	}

	f, err := os.Open(filepath.Join(s.dir, clean))
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return f, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
