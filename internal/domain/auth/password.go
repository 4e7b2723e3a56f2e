package auth

import (
	"crypto/rand"
	"encoding/base64"

	appErrors "github.com/Perod122/SinkIt/internal/errors"
)

// generateSecurePassword cria uma senha aleatória para contas provisionadas
// via Google, que nunca autenticam por senha.
func generateSecurePassword() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
