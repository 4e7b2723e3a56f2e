package auth

import (
	"context"

	"github.com/Perod122/SinkIt/internal/domain/user"
	appErrors "github.com/Perod122/SinkIt/internal/errors"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

type Login struct {
	Email    string
	Password string
}

type Service struct {
	Repository     user.Repository
	UserService    *user.Service
	GoogleClientID string
}

func NewService(repo user.Repository, userSvc *user.Service, googleClientID string) *Service {
	return &Service{
		Repository:     repo,
		UserService:    userSvc,
		GoogleClientID: googleClientID,
	}
}

func (s *Service) Login(ctx context.Context, login Login) (*user.User, error) {
	if login.Password == "" {
		return nil, appErrors.NewValidationError("password", "deve ser informado")
	}

	entity, err := s.Repository.GetByEmail(ctx, login.Email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.Password), []byte(login.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	return entity, nil
}

func (s *Service) Register(ctx context.Context, u *user.User) error {
	exists, err := s.emailExists(ctx, u.Email)
	if err != nil {
		return err
	}
	if exists {
		return appErrors.ErrEmailAlreadyExists
	}
	if err := user.ValidatePasswordRequirements(u.Password); err != nil {
		return err
	}
	return s.UserService.Create(ctx, u)
}

// GoogleLogin valida a credencial do Google Identity Services e cria a conta
// no primeiro acesso. Desabilitado quando GOOGLE_OAUTH_CLIENT_ID não está
// configurado.
func (s *Service) GoogleLogin(ctx context.Context, credential string) (*user.User, error) {
	if s.GoogleClientID == "" {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth não está configurado")
	}
	if credential == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "Credencial do Google não fornecida")
	}

	payload, err := idtoken.Validate(ctx, credential, s.GoogleClientID)
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token do Google inválido").WithError(err)
	}

	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return nil, appErrors.NewAuthError("EMAIL_MISSING", "Email não encontrado no token")
	}

	entity, err := s.Repository.GetByEmail(ctx, email)
	if err == nil {
		return entity, nil
	}

	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrUserNotFound.Code {
		return nil, err
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = "Usuário Google"
	}

	password, err := generateSecurePassword()
	if err != nil {
		return nil, err
	}

	newUser := &user.User{
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := s.UserService.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

func (s *Service) emailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.Repository.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		return false, appErrors.ErrInternalServer.WithError(err)
	}
	if appErr.Code == appErrors.ErrUserNotFound.Code {
		return false, nil
	}
	return false, appErr
}
