package fx

import (
	"time"

	"github.com/Perod122/SinkIt/internal/domain/auth"
	"github.com/Perod122/SinkIt/internal/domain/contribution"
	"github.com/Perod122/SinkIt/internal/domain/fund"
	"github.com/Perod122/SinkIt/internal/domain/member"
	"github.com/Perod122/SinkIt/internal/domain/user"
	"github.com/Perod122/SinkIt/internal/middleware"
	"github.com/Perod122/SinkIt/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler e o rate limiter das rotas públicas
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	authSvc *auth.Service,
	userSvc *user.Service,
	fundSvc *fund.Service,
	memberSvc *member.Service,
	contributionSvc *contribution.Service,
	jwtSvc *middleware.JwtService,
) *routes.Handler {
	return routes.NewHandler(authSvc, userSvc, fundSvc, memberSvc, contributionSvc, jwtSvc)
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
