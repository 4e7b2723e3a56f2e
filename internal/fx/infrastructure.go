package fx

import (
	"github.com/Perod122/SinkIt/config"
	"github.com/Perod122/SinkIt/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newFundRepository,
		newMemberRepository,
		newContributionRepository,
		newResourceCounter,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newFundRepository(db *gorm.DB) *infrastructure.FundRepository {
	return &infrastructure.FundRepository{DB: db}
}

func newMemberRepository(db *gorm.DB) *infrastructure.MemberRepository {
	return &infrastructure.MemberRepository{DB: db}
}

func newContributionRepository(db *gorm.DB) *infrastructure.ContributionRepository {
	return &infrastructure.ContributionRepository{DB: db}
}

func newResourceCounter(db *gorm.DB) *infrastructure.ResourceCounter {
	return &infrastructure.ResourceCounter{DB: db}
}
