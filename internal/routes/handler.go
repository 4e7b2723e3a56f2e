package routes

import (
	"github.com/Perod122/SinkIt/internal/domain/auth"
	"github.com/Perod122/SinkIt/internal/domain/contribution"
	"github.com/Perod122/SinkIt/internal/domain/fund"
	"github.com/Perod122/SinkIt/internal/domain/member"
	"github.com/Perod122/SinkIt/internal/domain/user"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/logger"
	"github.com/Perod122/SinkIt/internal/middleware"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	AuthService         *auth.Service
	UserService         *user.Service
	FundService         *fund.Service
	MemberService       *member.Service
	ContributionService *contribution.Service
	JwtService          *middleware.JwtService
}

func NewHandler(
	authSvc *auth.Service,
	userSvc *user.Service,
	fundSvc *fund.Service,
	memberSvc *member.Service,
	contributionSvc *contribution.Service,
	jwtSvc *middleware.JwtService,
) *Handler {
	return &Handler{
		AuthService:         authSvc,
		UserService:         userSvc,
		FundService:         fundSvc,
		MemberService:       memberSvc,
		ContributionService: contributionSvc,
		JwtService:          jwtSvc,
	}
}

// GetUserIDFromContext recupera o usuário autenticado injetado pelo
// AuthMiddleware. Retorna false com resposta 401 já escrita quando ausente.
func GetUserIDFromContext(c *gin.Context) (ulid.ULID, bool) {
	userIDStr := c.GetString("user_id")
	if userIDStr == "" {
		respondError(c, appErrors.ErrUnauthorized)
		return ulid.ULID{}, false
	}

	userID, err := pkg.ParseULID(userIDStr)
	if err != nil {
		respondError(c, appErrors.ErrUnauthorized.WithError(err))
		return ulid.ULID{}, false
	}

	return userID, true
}

func parsePagination(c *gin.Context) *pkg.PaginationParams {
	page, err := pkg.ParseInt(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := pkg.ParseInt(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}
	return pkg.NormalizePagination(&pkg.PaginationParams{Page: page, Limit: limit})
}

func parseIDParam(c *gin.Context, name string) (ulid.ULID, bool) {
	id, err := pkg.ParseULID(c.Param(name))
	if err != nil {
		respondError(c, appErrors.ErrBadRequest.WithDetails(map[string]interface{}{
			"param": name,
		}))
		return ulid.ULID{}, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	if appErr.StatusCode >= 500 {
		logger.Error().
			Err(appErr).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Msg("Erro ao processar requisição")
	}

	body := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}

	c.JSON(appErr.StatusCode, body)
}

func respondValidationError(c *gin.Context, err error) {
	respondError(c, appErrors.ParseValidationErrors(err))
}
