package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/Perod122/SinkIt/internal/domain/member"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

type memberDB struct {
	Id        string `gorm:"type:varchar(26);primaryKey"`
	FundId    string `gorm:"type:varchar(26);index;not null"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100)"`
	Count     int    `gorm:"not null"`
	CreatedAt time.Time
}

func toDomainMember(mdb *memberDB) (*member.Member, error) {
	id, err := pkg.ParseULID(mdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	fundID, err := pkg.ParseULID(mdb.FundId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &member.Member{
		Id:        id,
		FundId:    fundID,
		FirstName: mdb.FirstName,
		LastName:  mdb.LastName,
		Count:     mdb.Count,
		CreatedAt: mdb.CreatedAt,
	}, nil
}

func toDBMember(m *member.Member) *memberDB {
	return &memberDB{
		Id:        m.Id.String(),
		FundId:    m.FundId.String(),
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Count:     m.Count,
		CreatedAt: m.CreatedAt,
	}
}

func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	mdb := toDBMember(m)
	if err := r.DB.WithContext(ctx).Table("fund_members").Create(mdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *MemberRepository) GetById(ctx context.Context, id ulid.ULID) (*member.Member, error) {
	var mdb memberDB
	if err := r.DB.WithContext(ctx).Table("fund_members").Where("id = ?", id.String()).First(&mdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrMemberNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMember(&mdb)
}

func (r *MemberRepository) GetByFundId(ctx context.Context, fundID ulid.ULID, pagination *pkg.PaginationParams) ([]*member.Member, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	baseQuery := r.DB.WithContext(ctx).Table("fund_members").Where("fund_id = ?", fundID.String())

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []memberDB
	if err := baseQuery.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*member.Member, 0, len(rows))
	for i := range rows {
		m, err := toDomainMember(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, nil
}

func (r *MemberRepository) GetAllByFundId(ctx context.Context, fundID ulid.ULID) ([]*member.Member, error) {
	var rows []memberDB
	if err := r.DB.WithContext(ctx).Table("fund_members").
		Where("fund_id = ?", fundID.String()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*member.Member, 0, len(rows))
	for i := range rows {
		m, err := toDomainMember(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MemberRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("fund_members").Where("id = ?", id.String()).Delete(&memberDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrMemberNotFound
	}
	return nil
}
