package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/polenmarket/polen/internal/auth"
	"github.com/polenmarket/polen/internal/catalog"
	"github.com/polenmarket/polen/internal/clock"
	"github.com/polenmarket/polen/internal/config"
	"github.com/polenmarket/polen/internal/engagement"
	"github.com/polenmarket/polen/internal/logger"
	"github.com/polenmarket/polen/internal/metrics"
	"github.com/polenmarket/polen/internal/migration"
	"github.com/polenmarket/polen/internal/reporting"
	"github.com/polenmarket/polen/internal/server"
	"github.com/polenmarket/polen/internal/storage"
	"github.com/polenmarket/polen/pkg/db"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		metrics.Module,
		migration.Module,

		// Functional domains
		catalog.Module,
		engagement.Module,
		auth.Module,
		reporting.Module,
		storage.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
