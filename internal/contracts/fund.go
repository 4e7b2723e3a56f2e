package contracts

import (
	"time"

	"github.com/Perod122/SinkIt/internal/domain/fund"
)

type FundCreateRequest struct {
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	PaymentType string  `json:"payment_type" binding:"omitempty,oneof=Monthly Weekly Yearly One-time"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

type FundResponse struct {
	Id            string    `json:"id"`
	OwnerId       string    `json:"ownerId"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	PaymentType   string    `json:"paymentType"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	DaysRemaining int       `json:"daysRemaining"`
	TimeProgress  float64   `json:"timeProgress"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ToFundResponse(f *fund.SinkingFund, now time.Time) FundResponse {
	return FundResponse{
		Id:            f.Id.String(),
		OwnerId:       f.OwnerId.String(),
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
		PaymentType:   string(f.PaymentType),
		Amount:        f.Amount,
		Status:        string(f.Status),
		DaysRemaining: f.DaysRemaining(now),
		TimeProgress:  f.TimeProgress(now),
		CreatedAt:     f.CreatedAt,
	}
}

// FundMemberSummary agrega, por membro, a obrigação derivada das cotas e o
// total já pago no fundo.
type FundMemberSummary struct {
	Id          string  `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Count       int     `json:"count"`
	Obligation  float64 `json:"obligation"`
	Contributed float64 `json:"contributed"`
	Progress    float64 `json:"progress"`
}

type FundSummaryResponse struct {
	Fund             FundResponse        `json:"fund"`
	Members          []FundMemberSummary `json:"members"`
	TotalObligation  float64             `json:"totalObligation"`
	TotalContributed float64             `json:"totalContributed"`
	Progress         float64             `json:"progress"`
}
