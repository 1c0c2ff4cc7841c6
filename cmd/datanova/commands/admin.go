package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/datanova-api/internal/application/auth"
	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/infrastructure/memory"
	"github.com/jhoicas/datanova-api/internal/infrastructure/postgres"
)

var (
	adminName     string
	adminEmail    string
	adminPassword string
)

// createAdminCmd registra un usuario con rol ADMIN.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Crear un usuario ADMIN",
	Long: `Crea un usuario con rol ADMIN.

Ejemplo:
  datanova create-admin --email admin@datanova.io --password secreto --name "Admin"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		// Register no consulta la lista de revocados; basta la de memoria.
		uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), memory.NewDenylist(), dto.NewValidator(), auth.JWTConfig{})
		user, err := uc.Register(cmd.Context(), dto.RegisterRequest{
			Name:     adminName,
			Email:    adminEmail,
			Password: adminPassword,
			Role:     entity.RoleAdmin,
		})
		if err != nil {
			return fmt.Errorf("create-admin: %w", err)
		}
		log.Info().Str("id", user.ID).Str("email", user.Email).Msg("usuario ADMIN creado")
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "Admin", "Nombre")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Email (obligatorio)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password (obligatorio)")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}
