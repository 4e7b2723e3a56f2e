package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/Perod122/SinkIt/internal/domain/fund"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type FundRepository struct {
	DB *gorm.DB
}

type fundDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	OwnerId     string    `gorm:"type:varchar(26);index;not null"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	PaymentType string    `gorm:"type:varchar(20);not null"`
	Amount      float64   `gorm:"type:decimal(15,2);not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toDomainFund(fdb *fundDB) (*fund.SinkingFund, error) {
	id, err := pkg.ParseULID(fdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	ownerID, err := pkg.ParseULID(fdb.OwnerId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &fund.SinkingFund{
		Id:          id,
		OwnerId:     ownerID,
		StartDate:   fdb.StartDate,
		EndDate:     fdb.EndDate,
		PaymentType: fund.PaymentType(fdb.PaymentType),
		Amount:      fdb.Amount,
		Status:      fund.Status(fdb.Status),
		CreatedAt:   fdb.CreatedAt,
		UpdatedAt:   fdb.UpdatedAt,
	}, nil
}

func toDBFund(f *fund.SinkingFund) *fundDB {
	return &fundDB{
		Id:          f.Id.String(),
		OwnerId:     f.OwnerId.String(),
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		PaymentType: string(f.PaymentType),
		Amount:      f.Amount,
		Status:      string(f.Status),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (r *FundRepository) Create(ctx context.Context, f *fund.SinkingFund) error {
	fdb := toDBFund(f)
	if err := r.DB.WithContext(ctx).Table("sinking_funds").Create(fdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *FundRepository) GetByIdAndOwner(ctx context.Context, id, ownerID ulid.ULID) (*fund.SinkingFund, error) {
	var fdb fundDB
	if err := r.DB.WithContext(ctx).Table("sinking_funds").
		Where("id = ? AND owner_id = ?", id.String(), ownerID.String()).
		First(&fdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrFundNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainFund(&fdb)
}

func (r *FundRepository) GetByOwnerId(ctx context.Context, ownerID ulid.ULID, filters *fund.Filters, pagination *pkg.PaginationParams) ([]*fund.SinkingFund, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	baseQuery := r.DB.WithContext(ctx).Table("sinking_funds").Where("owner_id = ?", ownerID.String())
	if filters != nil && filters.Status != nil {
		baseQuery = baseQuery.Where("status = ?", string(*filters.Status))
		if *filters.Status == fund.StatusActive && !filters.AsOf.IsZero() {
			baseQuery = baseQuery.Where("end_date >= ?", filters.AsOf)
		}
	}

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []fundDB
	if err := baseQuery.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*fund.SinkingFund, 0, len(rows))
	for i := range rows {
		f, err := toDomainFund(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, f)
	}
	return out, total, nil
}

func (r *FundRepository) UpdateFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	if err := r.DB.WithContext(ctx).Table("sinking_funds").Where("id = ?", id.String()).Updates(fields).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *FundRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("sinking_funds").Where("id = ?", id.String()).Delete(&fundDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrFundNotFound
	}
	return nil
}

func (r *FundRepository) BelongsToOwner(ctx context.Context, fundID, ownerID ulid.ULID) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("sinking_funds").
		Where("id = ? AND owner_id = ?", fundID.String(), ownerID.String()).
		Count(&count).Error; err != nil {
		return false, appErrors.NewDatabaseError(err)
	}
	return count > 0, nil
}
