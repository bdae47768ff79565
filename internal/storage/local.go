package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/polenmarket/polen/internal/clock"
	"github.com/polenmarket/polen/internal/config"
	"go.uber.org/zap"
)

// LocalStore writes uploads under a directory served as static files.
// Meant for development and self-hosted setups without a cloud bucket.
type LocalStore struct {
	log     *zap.Logger
	dir     string
	baseURL string
	clock   clock.Clock
}

func NewLocalStore(log *zap.Logger, cfg config.Config, clk clock.Clock) *LocalStore {
	return &LocalStore{
		log:     log.Named("storage.local"),
		dir:     cfg.Storage.LocalDir,
		baseURL: cfg.Storage.PublicBaseURL,
		clock:   clk,
	}
}

func (s *LocalStore) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	_ = ctx

	key := ObjectKey(s.clock, filename)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		s.log.Error("write upload", zap.String("key", key), zap.Error(err))
		return "", err
	}

	return s.baseURL + "/" + key, nil
}
