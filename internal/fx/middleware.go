package fx

import (
	"github.com/Perod122/SinkIt/config"
	"github.com/Perod122/SinkIt/internal/domain/user"
	"github.com/Perod122/SinkIt/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
