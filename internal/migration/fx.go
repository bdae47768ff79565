package migration

import (
	"context"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/polenmarket/polen/internal/auth/domain"
	catalogdomain "github.com/polenmarket/polen/internal/catalog/domain"
	"github.com/polenmarket/polen/internal/config"
	engagementdomain "github.com/polenmarket/polen/internal/engagement/domain"
	"github.com/polenmarket/polen/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, node *snowflake.Node, users authdomain.Repository, log *zap.Logger) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB, log.Named("migrations")); err != nil {
				return err
			}
		} else {
			// mysql/sqlite dev setups derive the schema from the models.
			if err := conn.AutoMigrate(
				&catalogdomain.Category{},
				&catalogdomain.Product{},
				&engagementdomain.ContactMessage{},
				&engagementdomain.DailyStatistic{},
				&authdomain.AdminUser{},
				&authdomain.Session{},
			); err != nil {
				return err
			}
		}

		if cfg.Bootstrap.EnsureDefaultAdmin {
			if err := seed.EnsureDefaultAdmin(context.Background(), users, node, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
				return err
			}
		}
		if cfg.Bootstrap.SeedCategories {
			return seed.EnsureStarterCategories(conn, node)
		}
		return nil
	}),
)
