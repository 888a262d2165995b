package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
)

type seedOptions struct {
	company  string
	taxID    string
	email    string
	name     string
	password string
}

func newSeedCommand() *cobra.Command {
	var opts seedOptions
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Crea una empresa con su usuario SUPER_ADMIN",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			companyID, err := runSeed(cmd.Context(), opts)
			if err != nil {
				return err
			}
			cmd.Printf("empresa %s creada (%s)\n", opts.company, companyID)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.company, "company", "", "nombre de la empresa")
	cmd.Flags().StringVar(&opts.taxID, "tax-id", "", "NIT de la empresa")
	cmd.Flags().StringVar(&opts.email, "email", "", "email del administrador")
	cmd.Flags().StringVar(&opts.name, "name", "Administrador", "nombre del administrador")
	cmd.Flags().StringVar(&opts.password, "password", "", "contraseña del administrador (mínimo 8)")
	return cmd
}

func (o *seedOptions) validate() error {
	o.company = strings.TrimSpace(o.company)
	o.email = strings.ToLower(strings.TrimSpace(o.email))
	switch {
	case o.company == "":
		return errors.New("--company es requerido")
	case o.email == "":
		return errors.New("--email es requerido")
	case len(o.password) < 8:
		return errors.New("--password debe tener al menos 8 caracteres")
	}
	return nil
}

// runSeed crea empresa, usuario y membresía en una sola transacción.
// Si el usuario ya existe se reutiliza y solo se agrega la membresía.
func runSeed(ctx context.Context, opts seedOptions) (string, error) {
	cfg, log, err := loadEnv()
	if err != nil {
		return "", err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return "", err
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	userID, err := ensureUser(ctx, tx, &entity.User{
		ID:           uuid.New().String(),
		Email:        opts.email,
		PasswordHash: string(hash),
		Name:         opts.name,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", err
	}

	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      opts.company,
		TaxID:     opts.taxID,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := postgres.NewCompanyRepository(tx).Create(ctx, company); err != nil {
		return "", err
	}
	if err := postgres.NewMembershipRepository(tx).Create(ctx, &entity.UserCompany{
		UserID:    userID,
		CompanyID: company.ID,
		Role:      entity.RoleSuperAdmin,
		CreatedAt: now,
	}); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	log.Info().
		Str("company_id", company.ID).
		Str("user_id", userID).
		Msg("seed completado")
	return company.ID, nil
}

func ensureUser(ctx context.Context, tx pgx.Tx, user *entity.User) (string, error) {
	users := postgres.NewUserRepository(tx)
	existing, err := users.GetByEmail(ctx, user.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}
	if err := users.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}
