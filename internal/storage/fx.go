package storage

import (
	"fmt"

	"github.com/polenmarket/polen/internal/clock"
	"github.com/polenmarket/polen/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Provide(log *zap.Logger, cfg config.Config, clk clock.Clock) (BlobStore, error) {
	switch cfg.Storage.Provider {
	case "cloudinary":
		return NewCloudinaryStore(log, cfg, clk)
	case "local":
		return NewLocalStore(log, cfg, clk), nil
	default:
		return nil, fmt.Errorf("unsupported storage provider %q", cfg.Storage.Provider)
	}
}

var Module = fx.Module("storage",
	fx.Provide(Provide),
)
