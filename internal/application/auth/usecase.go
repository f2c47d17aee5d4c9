package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
	"github.com/neonflow/neonflow-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Solo cuentas ACTIVE pueden iniciar sesión; el intento exitoso actualiza
// LastActive.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserActive {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	user.LastActive = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			Status:     user.Status,
			Avatar:     user.Avatar,
			LastActive: user.LastActive.Format(time.RFC3339),
		},
	}, nil
}
