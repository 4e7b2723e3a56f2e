package middleware

import (
	"net/http"

	"github.com/Perod122/SinkIt/internal/domain/plan"
	"github.com/Perod122/SinkIt/internal/domain/user"
	appErrors "github.com/Perod122/SinkIt/internal/errors"

	"github.com/gin-gonic/gin"
)

type ResourceCounter interface {
	CountFunds(ownerID string) (int64, error)
	CountMembers(fundID string) (int64, error)
}

func planFromContext(c *gin.Context) (user.Plan, bool) {
	planValue, exists := c.Get("plan")
	if !exists {
		return "", false
	}
	userPlan, ok := planValue.(user.Plan)
	return userPlan, ok
}

func abortLimit(c *gin.Context, err *appErrors.AppError) {
	c.JSON(err.StatusCode, gin.H{
		"error":   err.Code,
		"message": err.Message,
	})
	c.Abort()
}

// CheckFundLimit bloqueia a criação de fundos acima do teto do plano.
func CheckFundLimit(counter ResourceCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userPlan, ok := planFromContext(c)
		if !ok {
			abortLimit(c, appErrors.WrapError(nil, appErrors.ErrForbidden.Code, "Plano não encontrado", http.StatusForbidden))
			return
		}

		limits := plan.GetLimits(userPlan)
		if limits.MaxFunds < 0 {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		count, err := counter.CountFunds(userID)
		if err != nil {
			abortLimit(c, appErrors.FromError(err))
			return
		}

		if count >= int64(limits.MaxFunds) {
			abortLimit(c, appErrors.WrapError(nil, "PLAN_LIMIT_REACHED", "Limite de fundos do plano atingido", http.StatusForbidden))
			return
		}

		c.Next()
	}
}

// CheckMemberLimit bloqueia a adição de membros acima do teto por fundo.
// Assume rota com parâmetro :id identificando o fundo.
func CheckMemberLimit(counter ResourceCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userPlan, ok := planFromContext(c)
		if !ok {
			abortLimit(c, appErrors.WrapError(nil, appErrors.ErrForbidden.Code, "Plano não encontrado", http.StatusForbidden))
			return
		}

		limits := plan.GetLimits(userPlan)
		if limits.MaxMembersPerFund < 0 {
			c.Next()
			return
		}

		fundID := c.Param("id")
		count, err := counter.CountMembers(fundID)
		if err != nil {
			abortLimit(c, appErrors.FromError(err))
			return
		}

		if count >= int64(limits.MaxMembersPerFund) {
			abortLimit(c, appErrors.WrapError(nil, "PLAN_LIMIT_REACHED", "Limite de membros do plano atingido", http.StatusForbidden))
			return
		}

		c.Next()
	}
}
