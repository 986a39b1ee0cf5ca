package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/contable-pro/internal/domain"
	"github.com/tu-usuario/contable-pro/pkg/config"
	"github.com/tu-usuario/contable-pro/pkg/jwt"
)

// UseCase la puerta de acceso de contraseña única de la aplicación: no hay
// cuentas de usuario, una sola contraseña abre la sesión y emite el token.
type UseCase struct {
	puerta config.PuertaConfig
	jwtCfg config.JWTConfig
}

// New construye el caso de uso.
func New(puerta config.PuertaConfig, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{puerta: puerta, jwtCfg: jwtCfg}
}

// Entrar valida la contraseña y devuelve un token de sesión. Si hay hash
// bcrypt configurado se usa; si no, se compara en tiempo constante contra la
// contraseña en claro (paridad con el original, solo para development).
func (uc *UseCase) Entrar(password string) (string, error) {
	switch {
	case uc.puerta.PasswordHash != "":
		if err := bcrypt.CompareHashAndPassword([]byte(uc.puerta.PasswordHash), []byte(password)); err != nil {
			return "", domain.ErrNoAutorizado
		}
	case uc.puerta.Password != "":
		if subtle.ConstantTimeCompare([]byte(uc.puerta.Password), []byte(password)) != 1 {
			return "", domain.ErrNoAutorizado
		}
	default:
		// Sin contraseña configurada no se abre nada.
		return "", domain.ErrNoAutorizado
	}

	return jwt.Generate(uc.jwtCfg.Secret, "sesion", uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
}
