package fund

import (
	"math"
	"time"

	"github.com/oklog/ulid/v2"
)

type PaymentType string

const (
	PaymentMonthly PaymentType = "Monthly"
	PaymentWeekly  PaymentType = "Weekly"
	PaymentYearly  PaymentType = "Yearly"
	PaymentOneTime PaymentType = "One-time"
)

func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentMonthly, PaymentWeekly, PaymentYearly, PaymentOneTime:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type SinkingFund struct {
	Id          ulid.ULID   `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId     ulid.ULID   `gorm:"type:varchar(26);index:idx_sinking_funds_owner_id;not null" json:"ownerId"`
	StartDate   time.Time   `gorm:"type:date;not null" json:"startDate"`
	EndDate     time.Time   `gorm:"type:date;not null" json:"endDate"`
	PaymentType PaymentType `gorm:"type:varchar(20);not null;default:'Monthly'" json:"paymentType"`
	Amount      float64     `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status      Status      `gorm:"type:varchar(20);not null;default:'active';index:idx_sinking_funds_status" json:"status"`
	CreatedAt   time.Time   `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (SinkingFund) TableName() string {
	return "sinking_funds"
}

// ShouldComplete indica se o prazo do fundo já passou e o status ainda não
// reflete isso. A transição é monotônica: um fundo concluído nunca volta a
// ser ativo.
func (f *SinkingFund) ShouldComplete(now time.Time) bool {
	return f.Status != StatusCompleted && now.After(f.EndDate)
}

// ComputeStatus calcula o status efetivo do fundo para o instante informado,
// sem efeito colateral. A persistência da transição é responsabilidade do
// service e nunca bloqueia a leitura.
func ComputeStatus(f *SinkingFund, now time.Time) Status {
	if f.Status == StatusCompleted || now.After(f.EndDate) {
		return StatusCompleted
	}
	return StatusActive
}

// DaysRemaining retorna quantos dias faltam até o fim do prazo (zero quando o
// prazo já passou).
func (f *SinkingFund) DaysRemaining(now time.Time) int {
	days := int(math.Ceil(f.EndDate.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// TimeProgress retorna o percentual do prazo já decorrido, entre 0 e 100.
func (f *SinkingFund) TimeProgress(now time.Time) float64 {
	total := f.EndDate.Sub(f.StartDate)
	if total <= 0 {
		return 100
	}
	elapsed := now.Sub(f.StartDate)
	progress := float64(elapsed) / float64(total) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
