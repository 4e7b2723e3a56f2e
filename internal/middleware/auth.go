package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Perod122/SinkIt/config"
	"github.com/Perod122/SinkIt/internal/domain/user"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

type JwtService struct {
	secret      []byte
	expiresIn   time.Duration
	UserService *user.Service
}

func NewJwtService(cfg config.JWTConfig, userSvc *user.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("JWT secret não configurado")
	}
	return &JwtService{
		secret:      []byte(cfg.Secret),
		expiresIn:   cfg.ExpiresIn,
		UserService: userSvc,
	}, nil
}

func (s *JwtService) GenerateToken(userID ulid.ULID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (s *JwtService) ValidateToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado").WithError(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", appErrors.NewAuthError("TOKEN_INVALID", "Claims do token inválidas")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", appErrors.NewAuthError("TOKEN_INVALID", "Token sem identificação do usuário")
	}

	return userID, nil
}

// AuthMiddleware resolve o usuário a partir do header Authorization e injeta
// user_id e plan no contexto da requisição.
func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Token de autorização não fornecido")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "Formato do header Authorization inválido")
			return
		}

		userIDStr, err := jwtSvc.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Token inválido ou expirado")
			return
		}

		userID, err := pkg.ParseULID(userIDStr)
		if err != nil {
			abortUnauthorized(c, "Token inválido ou expirado")
			return
		}

		entity, err := jwtSvc.UserService.GetByID(contextOf(c), userID)
		if err != nil {
			abortUnauthorized(c, "Usuário não encontrado")
			return
		}

		c.Set("user_id", entity.Id.String())
		c.Set("plan", entity.Plan)
		c.Next()
	}
}

func contextOf(c *gin.Context) context.Context {
	return c.Request.Context()
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(appErrors.ErrUnauthorized.StatusCode, gin.H{
		"error":   appErrors.ErrUnauthorized.Code,
		"message": message,
	})
	c.Abort()
}
