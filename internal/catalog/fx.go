package catalog

import (
	"github.com/polenmarket/polen/internal/catalog/repository"
	"github.com/polenmarket/polen/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
