package routes

import (
	"net/http"

	"github.com/Perod122/SinkIt/internal/contracts"
	domaincontracts "github.com/Perod122/SinkIt/internal/domain/contracts"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AddMember(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	fundID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request contracts.MemberAddRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondValidationError(c, err)
		return
	}

	entity, err := h.MemberService.AddMember(c.Request.Context(), &domaincontracts.MemberAddRequest{
		FundId:    fundID,
		OwnerId:   userID,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Count:     request.Count,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ToMemberResponse(entity))
}

func (h *Handler) ListMembers(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	fundID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pagination := parsePagination(c)

	members, total, err := h.MemberService.ListMembers(c.Request.Context(), fundID, userID, pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]contracts.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, contracts.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(responses, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetMember(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entity, err := h.MemberService.GetMember(c.Request.Context(), memberID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ToMemberResponse(entity))
}

func (h *Handler) DeleteMember(c *gin.Context) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.MemberService.DeleteMember(c.Request.Context(), memberID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Membro removido com sucesso"})
}
