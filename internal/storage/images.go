package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ImageStore keeps receipt images on local disk, keyed by owner and upload
// time, and hands back the public URL they are served under. Uploads are
// best-effort for callers: a failed save never blocks debt creation.
type ImageStore struct {
	dir     string
	baseURL string
	log     *logrus.Logger
}

// NewImageStore creates the store rooted at dir.
func NewImageStore(dir, baseURL string, log *logrus.Logger) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}
	return &ImageStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/"), log: log}, nil
}

// Dir returns the root directory images are written to.
func (s *ImageStore) Dir() string { return s.dir }

// Save writes an image blob under <dir>/<userID>/<unix-ts>.<ext> and returns
// its public URL.
func (s *ImageStore) Save(userID int64, ext string, data []byte) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "jpg"
	}
	userDir := filepath.Join(s.dir, fmt.Sprintf("%d", userID))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create user image dir: %w", err)
	}
	name := fmt.Sprintf("%d.%s", time.Now().UnixNano(), ext)
	if err := os.WriteFile(filepath.Join(userDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	url := fmt.Sprintf("%s/%d/%s", s.baseURL, userID, name)
	s.log.Debugf("Stored receipt image %s", url)
	return url, nil
}
