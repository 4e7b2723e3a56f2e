package infrastructure

import (
	"context"
	"time"

	"github.com/Perod122/SinkIt/internal/domain/contribution"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ContributionRepository struct {
	DB *gorm.DB
}

type contributionDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	MemberId  string    `gorm:"type:varchar(26);index;not null"`
	FundId    string    `gorm:"type:varchar(26);index;not null"`
	Amount    float64   `gorm:"type:decimal(15,2);not null"`
	DatePaid  time.Time `gorm:"type:timestamp;not null"`
	CreatedAt time.Time
}

func toDomainContribution(cdb *contributionDB) (*contribution.Contribution, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	memberID, err := pkg.ParseULID(cdb.MemberId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	fundID, err := pkg.ParseULID(cdb.FundId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &contribution.Contribution{
		Id:        id,
		MemberId:  memberID,
		FundId:    fundID,
		Amount:    cdb.Amount,
		DatePaid:  cdb.DatePaid,
		CreatedAt: cdb.CreatedAt,
	}, nil
}

func toDBContribution(c *contribution.Contribution) *contributionDB {
	return &contributionDB{
		Id:        c.Id.String(),
		MemberId:  c.MemberId.String(),
		FundId:    c.FundId.String(),
		Amount:    c.Amount,
		DatePaid:  c.DatePaid,
		CreatedAt: c.CreatedAt,
	}
}

func (r *ContributionRepository) Create(ctx context.Context, c *contribution.Contribution) error {
	cdb := toDBContribution(c)
	if err := r.DB.WithContext(ctx).Table("contributions").Create(cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ContributionRepository) GetByMemberAndFund(ctx context.Context, memberID, fundID ulid.ULID) ([]*contribution.Contribution, error) {
	var rows []contributionDB
	if err := r.DB.WithContext(ctx).Table("contributions").
		Where("member_id = ? AND fund_id = ?", memberID.String(), fundID.String()).
		Order("date_paid DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainContributions(rows)
}

func (r *ContributionRepository) GetByFundId(ctx context.Context, fundID ulid.ULID) ([]*contribution.Contribution, error) {
	var rows []contributionDB
	if err := r.DB.WithContext(ctx).Table("contributions").
		Where("fund_id = ?", fundID.String()).
		Order("date_paid DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainContributions(rows)
}

func (r *ContributionRepository) SumByFund(ctx context.Context, fundID ulid.ULID) (float64, error) {
	var sum float64
	if err := r.DB.WithContext(ctx).Table("contributions").
		Select("COALESCE(SUM(amount), 0)").
		Where("fund_id = ?", fundID.String()).
		Scan(&sum).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return sum, nil
}

func (r *ContributionRepository) SumByMemberAndFund(ctx context.Context, memberID, fundID ulid.ULID) (float64, error) {
	var sum float64
	if err := r.DB.WithContext(ctx).Table("contributions").
		Select("COALESCE(SUM(amount), 0)").
		Where("member_id = ? AND fund_id = ?", memberID.String(), fundID.String()).
		Scan(&sum).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return sum, nil
}

func toDomainContributions(rows []contributionDB) ([]*contribution.Contribution, error) {
	out := make([]*contribution.Contribution, 0, len(rows))
	for i := range rows {
		c, err := toDomainContribution(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
