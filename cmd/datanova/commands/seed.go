package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
	"github.com/jhoicas/datanova-api/internal/domain"
	"github.com/jhoicas/datanova-api/internal/domain/entity"
	"github.com/jhoicas/datanova-api/internal/infrastructure/postgres"
)

var defaultCategories = []dto.CreateCategoryRequest{
	{Code: entity.CategoryVente, Description: "Seguimiento de ventas"},
	{Code: entity.CategoryPerfoEmp, Description: "Desempeño de empleados"},
}

// seedCmd crea las categories de referencia si no existen.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Crear las categories VENTE y PERFO_EMP",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		uc := usecase.NewCategoryUseCase(postgres.NewCategoryRepository(pool), dto.NewValidator())
		for _, in := range defaultCategories {
			out, err := uc.Create(cmd.Context(), in)
			switch {
			case errors.Is(err, domain.ErrDuplicate):
				log.Info().Str("code", in.Code).Msg("categorie existente, se omite")
			case err != nil:
				return err
			default:
				log.Info().Str("code", out.Code).Str("id", out.ID).Msg("categorie creada")
			}
		}
		return nil
	},
}
