package contribution

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Contribution é um lançamento imutável: criado uma vez, nunca atualizado ou
// removido pela API.
type Contribution struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	MemberId  ulid.ULID `gorm:"type:varchar(26);index:idx_contributions_member_id;not null" json:"memberId"`
	FundId    ulid.ULID `gorm:"type:varchar(26);index:idx_contributions_fund_id;not null" json:"fundId"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	DatePaid  time.Time `gorm:"type:timestamp;not null" json:"datePaid"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Contribution) TableName() string {
	return "contributions"
}
