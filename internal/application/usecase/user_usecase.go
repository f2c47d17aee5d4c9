package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo ADMIN desde HTTP).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrValidation)
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if role != entity.RoleAdmin && role != entity.RoleStaff {
		return nil, fmt.Errorf("%w: rol %q desconocido", domain.ErrValidation, in.Role)
	}
	status := in.Status
	if status == "" {
		status = entity.UserActive
	}
	if status != entity.UserActive && status != entity.UserInactive {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrValidation, in.Status)
	}

	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		Avatar:       in.Avatar,
		LastActive:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update modifica un usuario existente. Campos vacíos se conservan; Password
// vacío no cambia la clave.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email != user.Email {
			existing, err := uc.repo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if in.Name != "" {
		user.Name = strings.TrimSpace(in.Name)
	}
	if in.Role != "" {
		if in.Role != entity.RoleAdmin && in.Role != entity.RoleStaff {
			return nil, fmt.Errorf("%w: rol %q desconocido", domain.ErrValidation, in.Role)
		}
		user.Role = in.Role
	}
	if in.Status != "" {
		if in.Status != entity.UserActive && in.Status != entity.UserInactive {
			return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrValidation, in.Status)
		}
		user.Status = in.Status
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List devuelve todos los usuarios sin campos sensibles.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Status:     u.Status,
		Avatar:     u.Avatar,
		LastActive: u.LastActive.Format(time.RFC3339),
	}
}
