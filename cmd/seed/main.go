// seed crea el usuario administrador inicial si no existe.
//
// Uso: go run ./cmd/seed
// Lee SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD y SEED_ADMIN_NAME del entorno
// (además de la configuración de DB habitual).
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/infrastructure/postgres"
	"github.com/neonflow/neonflow-api/pkg/config"
)

func main() {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := strings.TrimSpace(os.Getenv("SEED_ADMIN_NAME"))
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}
	if name == "" {
		name = email
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("El usuario %s ya existe (id=%s), nada que hacer\n", email, existing.ID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Status:       entity.UserActive,
		LastActive:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Administrador creado: %s (id=%s)\n", email, admin.ID)
}
