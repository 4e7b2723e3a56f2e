package fx

import (
	"context"

	"github.com/Perod122/SinkIt/config"
	"github.com/Perod122/SinkIt/internal/infrastructure"
	"github.com/Perod122/SinkIt/internal/logger"
	"github.com/Perod122/SinkIt/internal/middleware"
	"github.com/Perod122/SinkIt/internal/routes"

	"github.com/gin-gonic/gin"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
	resourceCounter *infrastructure.ResourceCounter,
) {
	router.Use(middleware.CORSMiddleware())

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Login)
		public.POST("/auth/register", handler.Register)
		public.POST("/auth/google", handler.GoogleLogin)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		users := private.Group("/users")
		{
			users.GET("/me", handler.GetMe)
			users.PATCH("/me", handler.UpdateName)
			users.PATCH("/me/password", handler.UpdatePassword)
			users.DELETE("/me", handler.DeleteAccount)
		}

		funds := private.Group("/funds")
		{
			funds.POST("", middleware.CheckFundLimit(resourceCounter), handler.CreateFund)
			funds.GET("", handler.ListFunds)
			funds.GET("/:id", handler.GetFund)
			funds.GET("/:id/summary", handler.GetFundSummary)
			funds.GET("/:id/contributions", handler.GetFundContributions)
			funds.POST("/:id/complete", handler.CompleteFund)
			funds.DELETE("/:id", handler.DeleteFund)

			funds.POST("/:id/members", middleware.CheckMemberLimit(resourceCounter), handler.AddMember)
			funds.GET("/:id/members", handler.ListMembers)
			funds.POST("/:id/members/:memberId/contributions", handler.AddContribution)
			funds.GET("/:id/members/:memberId/contributions", handler.ListContributions)
		}

		members := private.Group("/members")
		{
			members.GET("/:id", handler.GetMember)
			members.DELETE("/:id", handler.DeleteMember)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
