package contracts

import (
	"time"

	"github.com/Perod122/SinkIt/internal/domain/contribution"
)

type ContributionAddRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	DatePaid string  `json:"date_paid" binding:"omitempty"`
}

type ContributionResponse struct {
	Id        string    `json:"id"`
	MemberId  string    `json:"memberId"`
	FundId    string    `json:"fundId"`
	Amount    float64   `json:"amount"`
	DatePaid  time.Time `json:"datePaid"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToContributionResponse(c *contribution.Contribution) ContributionResponse {
	return ContributionResponse{
		Id:        c.Id.String(),
		MemberId:  c.MemberId.String(),
		FundId:    c.FundId.String(),
		Amount:    c.Amount,
		DatePaid:  c.DatePaid,
		CreatedAt: c.CreatedAt,
	}
}

func ToContributionResponses(rows []*contribution.Contribution) []ContributionResponse {
	responses := make([]ContributionResponse, 0, len(rows))
	for _, c := range rows {
		responses = append(responses, ToContributionResponse(c))
	}
	return responses
}

// ContributionListResponse devolve os lançamentos junto do total recalculado
// do fundo, para o cliente atualizar o progresso sem nova consulta.
type ContributionListResponse struct {
	Contributions []ContributionResponse `json:"contributions"`
	FundTotal     float64                `json:"fundTotal"`
}

// ContributionCreateResponse devolve o lançamento criado com o total do fundo
// já incluindo o novo pagamento.
type ContributionCreateResponse struct {
	Contribution ContributionResponse `json:"contribution"`
	FundTotal    float64              `json:"fundTotal"`
}
