package fx

import (
	"github.com/Perod122/SinkIt/config"
	"github.com/Perod122/SinkIt/internal/domain/auth"
	"github.com/Perod122/SinkIt/internal/domain/contribution"
	"github.com/Perod122/SinkIt/internal/domain/fund"
	"github.com/Perod122/SinkIt/internal/domain/member"
	"github.com/Perod122/SinkIt/internal/domain/shared"
	"github.com/Perod122/SinkIt/internal/domain/user"
	"github.com/Perod122/SinkIt/internal/infrastructure"
	"github.com/Perod122/SinkIt/internal/logger"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserCheckerService,

		newGoogleClientID,
		newAuthService,

		newFundService,
		newMemberService,
		newContributionService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserCheckerService(userSvc *user.Service) *shared.UserCheckerService {
	return shared.NewUserCheckerService(userSvc)
}

func newGoogleClientID(cfg *config.Config) string {
	googleClientID := ""
	if cfg.GoogleOAuth.Enabled {
		if cfg.GoogleOAuth.ClientID == "" {
			logger.Warn().
				Msg("GOOGLE_OAUTH_ENABLED=true mas GOOGLE_OAUTH_CLIENT_ID está vazio. Verifique se a variável está definida no arquivo .env")
		} else {
			googleClientID = cfg.GoogleOAuth.ClientID
			logger.Info().
				Int("client_id_length", len(googleClientID)).
				Msg("Google OAuth habilitado")
		}
	} else {
		logger.Info().Msg("Google OAuth desabilitado (GOOGLE_OAUTH_ENABLED não está definido como 'true')")
	}
	return googleClientID
}

func newAuthService(
	repo *infrastructure.UserRepository,
	userSvc *user.Service,
	googleClientID string,
) *auth.Service {
	return auth.NewService(repo, userSvc, googleClientID)
}

func newFundService(
	repo *infrastructure.FundRepository,
	userChecker *shared.UserCheckerService,
) *fund.Service {
	return fund.NewService(repo, userChecker)
}

func newMemberService(
	repo *infrastructure.MemberRepository,
	fundSvc *fund.Service,
) *member.Service {
	return member.NewService(repo, fundSvc)
}

func newContributionService(
	repo *infrastructure.ContributionRepository,
	memberSvc *member.Service,
) *contribution.Service {
	return contribution.NewService(repo, memberSvc)
}
