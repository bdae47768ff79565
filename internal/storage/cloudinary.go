package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/polenmarket/polen/internal/clock"
	"github.com/polenmarket/polen/internal/config"
	"go.uber.org/zap"
)

// CloudinaryStore uploads product images to Cloudinary.
type CloudinaryStore struct {
	log    *zap.Logger
	cld    *cloudinary.Cloudinary
	folder string
	clock  clock.Clock
}

func NewCloudinaryStore(log *zap.Logger, cfg config.Config, clk clock.Clock) (*CloudinaryStore, error) {
	if cfg.Storage.CloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is required for the cloudinary storage provider")
	}
	cld, err := cloudinary.NewFromURL(cfg.Storage.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStore{
		log:    log.Named("storage.cloudinary"),
		cld:    cld,
		folder: cfg.Storage.CloudinaryFolder,
		clock:  clk,
	}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := ObjectKey(s.clock, filename)

	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID: key,
		Folder:   s.folder,
	})
	if err != nil {
		s.log.Error("cloudinary upload", zap.String("key", key), zap.Error(err))
		return "", err
	}
	return result.SecureURL, nil
}
