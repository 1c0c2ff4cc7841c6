package commands

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/datanova-api/internal/infrastructure/postgres"
)

// migrateCmd aplica las migraciones embebidas pendientes.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplicar migraciones pendientes",
	Long: `Aplica en orden los archivos SQL embebidos que aún no figuran en
schema_migrations. Ejecutarlo dos veces no tiene efecto.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		applied, err := postgres.Migrate(cmd.Context(), pool)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			log.Info().Msg("esquema al día, nada que aplicar")
			return nil
		}
		log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
		return nil
	},
}
