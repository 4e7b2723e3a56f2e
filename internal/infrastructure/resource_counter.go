package infrastructure

import (
	appErrors "github.com/Perod122/SinkIt/internal/errors"

	"gorm.io/gorm"
)

// ResourceCounter conta recursos para a checagem de limites por plano.
type ResourceCounter struct {
	DB *gorm.DB
}

func (rc *ResourceCounter) CountFunds(ownerID string) (int64, error) {
	var count int64
	if err := rc.DB.Table("sinking_funds").Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (rc *ResourceCounter) CountMembers(fundID string) (int64, error) {
	var count int64
	if err := rc.DB.Table("fund_members").Where("fund_id = ?", fundID).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}
