package member

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Member struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	FundId    ulid.ULID `gorm:"type:varchar(26);index:idx_fund_members_fund_id;not null" json:"fundId"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(100)" json:"lastName,omitempty"`
	Count     int       `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Member) TableName() string {
	return "fund_members"
}

// Obligation é o total devido pelo membro: quantidade de cotas prometidas
// vezes o valor unitário do fundo. Derivado a cada leitura, nunca armazenado;
// mudar o valor do fundo muda a obrigação de todos os membros.
func (m *Member) Obligation(fundAmount float64) float64 {
	return float64(m.Count) * fundAmount
}
