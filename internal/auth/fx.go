package auth

import (
	"github.com/polenmarket/polen/internal/auth/repository"
	"github.com/polenmarket/polen/internal/auth/service"
	"github.com/polenmarket/polen/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth",
	fx.Provide(repository.New),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
)
