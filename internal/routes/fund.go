package routes

import (
	"net/http"
	"time"

	"github.com/Perod122/SinkIt/internal/contracts"
	domaincontracts "github.com/Perod122/SinkIt/internal/domain/contracts"
	"github.com/Perod122/SinkIt/internal/domain/fund"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/logger"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/gin-gonic/gin"
)

// parseDate aceita datas no formato RFC3339 ou apenas "2006-01-02".
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (h *Handler) CreateFund(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}

	var request contracts.FundCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondValidationError(c, err)
		return
	}

	startDate, err := parseDate(request.StartDate)
	if err != nil {
		respondError(c, appErrors.NewValidationError("start_date", "deve ser uma data válida"))
		return
	}
	endDate, err := parseDate(request.EndDate)
	if err != nil {
		respondError(c, appErrors.NewValidationError("end_date", "deve ser uma data válida"))
		return
	}

	entity, err := h.FundService.CreateFund(c.Request.Context(), &domaincontracts.FundCreateRequest{
		OwnerId:     userID,
		StartDate:   startDate,
		EndDate:     endDate,
		PaymentType: request.PaymentType,
		Amount:      request.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info().
		Str("fund_id", entity.Id.String()).
		Str("owner_id", userID.String()).
		Msg("Fundo criado")

	c.JSON(http.StatusCreated, contracts.ToFundResponse(entity, time.Now()))
}

func (h *Handler) ListFunds(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}

	filters := &fund.Filters{}
	if statusStr := c.Query("status"); statusStr != "" {
		status := fund.Status(statusStr)
		if status != fund.StatusActive && status != fund.StatusCompleted {
			respondError(c, appErrors.NewValidationError("status", "deve ser active ou completed"))
			return
		}
		filters.Status = &status
	}

	pagination := parsePagination(c)

	funds, total, err := h.FundService.ListFunds(c.Request.Context(), userID, filters, pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	responses := make([]contracts.FundResponse, 0, len(funds))
	for _, f := range funds {
		responses = append(responses, contracts.ToFundResponse(f, now))
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(responses, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetFund(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	fundID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entity, err := h.FundService.GetFund(c.Request.Context(), fundID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ToFundResponse(entity, time.Now()))
}

// GetFundSummary monta a visão agregada do fundo: roster de membros com
// obrigação derivada das cotas, totais pagos e progresso financeiro.
func (h *Handler) GetFundSummary(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	fundID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	entity, err := h.FundService.GetFund(ctx, fundID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	roster, err := h.MemberService.RosterForFund(ctx, fundID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	summary := contracts.FundSummaryResponse{
		Fund:    contracts.ToFundResponse(entity, now),
		Members: make([]contracts.FundMemberSummary, 0, len(roster)),
	}

	for _, m := range roster {
		contributed, err := h.ContributionService.SumForMember(ctx, m.Id, fundID)
		if err != nil {
			respondError(c, err)
			return
		}

		obligation := m.Obligation(entity.Amount)
		progress := 0.0
		if obligation > 0 {
			progress = contributed / obligation * 100
		}

		summary.Members = append(summary.Members, contracts.FundMemberSummary{
			Id:          m.Id.String(),
			FirstName:   m.FirstName,
			LastName:    m.LastName,
			Count:       m.Count,
			Obligation:  obligation,
			Contributed: contributed,
			Progress:    progress,
		})
		summary.TotalObligation += obligation
		summary.TotalContributed += contributed
	}

	if summary.TotalObligation > 0 {
		summary.Progress = summary.TotalContributed / summary.TotalObligation * 100
	}

	c.JSON(http.StatusOK, summary)
}

// GetFundContributions lista todos os lançamentos do fundo com a soma total.
func (h *Handler) GetFundContributions(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	fundID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rows, total, err := h.ContributionService.TotalForFund(c.Request.Context(), fundID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ContributionListResponse{
		Contributions: contracts.ToContributionResponses(rows),
		FundTotal:     total,
	})
}

func (h *Handler) CompleteFund(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	fundID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.FundService.CompleteFund(c.Request.Context(), fundID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Fundo concluído com sucesso"})
}

func (h *Handler) DeleteFund(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	fundID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.FundService.DeleteFund(c.Request.Context(), fundID, userID); err != nil {
		respondError(c, err)
		return
	}

	logger.Info().
		Str("fund_id", fundID.String()).
		Str("owner_id", userID.String()).
		Msg("Fundo removido")

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Fundo removido com sucesso"})
}
