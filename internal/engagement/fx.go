package engagement

import (
	"github.com/polenmarket/polen/internal/engagement/repository"
	"github.com/polenmarket/polen/internal/engagement/service"
	"go.uber.org/fx"
)

var Module = fx.Module("engagement.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
