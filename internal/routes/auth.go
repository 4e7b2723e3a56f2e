package routes

import (
	"net/http"

	"github.com/Perod122/SinkIt/internal/contracts"
	"github.com/Perod122/SinkIt/internal/domain/auth"
	"github.com/Perod122/SinkIt/internal/domain/user"
	"github.com/Perod122/SinkIt/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var request contracts.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondValidationError(c, err)
		return
	}

	entity := &user.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
	}

	if err := h.AuthService.Register(c.Request.Context(), entity); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity.Id)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info().
		Str("user_id", entity.Id.String()).
		Msg("Novo usuário registrado")

	c.JSON(http.StatusCreated, contracts.AuthResponse{
		Token: token,
		User:  contracts.ToUserResponse(entity),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var request contracts.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondValidationError(c, err)
		return
	}

	entity, err := h.AuthService.Login(c.Request.Context(), auth.Login{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity.Id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Token: token,
		User:  contracts.ToUserResponse(entity),
	})
}

func (h *Handler) GoogleLogin(c *gin.Context) {
	var request contracts.GoogleLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondValidationError(c, err)
		return
	}

	entity, err := h.AuthService.GoogleLogin(c.Request.Context(), request.Credential)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity.Id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{
		Token: token,
		User:  contracts.ToUserResponse(entity),
	})
}
