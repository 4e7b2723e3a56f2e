package routes

import (
	"net/http"
	"time"

	"github.com/Perod122/SinkIt/internal/contracts"
	domaincontracts "github.com/Perod122/SinkIt/internal/domain/contracts"
	appErrors "github.com/Perod122/SinkIt/internal/errors"

	"github.com/gin-gonic/gin"
)

// AddContribution registra um pagamento do membro no fundo. A rota carrega o
// fundo e o membro no path para a checagem de vínculo entre os dois.
func (h *Handler) AddContribution(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	fundID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}

	var request contracts.ContributionAddRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondValidationError(c, err)
		return
	}

	var datePaid *time.Time
	if request.DatePaid != "" {
		parsed, err := parseDate(request.DatePaid)
		if err != nil {
			respondError(c, appErrors.NewValidationError("date_paid", "deve ser uma data válida"))
			return
		}
		datePaid = &parsed
	}

	ctx := c.Request.Context()

	entity, err := h.ContributionService.AddContribution(ctx, &domaincontracts.ContributionAddRequest{
		MemberId: memberID,
		FundId:   fundID,
		OwnerId:  userID,
		Amount:   request.Amount,
		DatePaid: datePaid,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.ContributionService.SumForFund(ctx, fundID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ContributionCreateResponse{
		Contribution: contracts.ToContributionResponse(entity),
		FundTotal:    total,
	})
}

func (h *Handler) ListContributions(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	fundID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	rows, err := h.ContributionService.ListContributions(ctx, memberID, fundID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.ContributionService.SumForFund(ctx, fundID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ContributionListResponse{
		Contributions: contracts.ToContributionResponses(rows),
		FundTotal:     total,
	})
}
