package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/datanova-api/internal/infrastructure/postgres"
	"github.com/jhoicas/datanova-api/pkg/config"
	"github.com/jhoicas/datanova-api/pkg/logger"
)

var (
	// Global flags
	dbURL   string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "datanova",
	Short: "DataNova - tareas de administración de la API",
	Long: `Herramientas de administración de DataNova sobre PostgreSQL.

La conexión se toma de --db o, si no se indica, de la misma configuración
que usa el servidor (DATABASE_URL o DB_HOST/DB_PORT/...).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "URL de conexión a PostgreSQL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Salida detallada")

	rootCmd.AddCommand(migrateCmd, seedCmd, createAdminCmd)
}

func newLogger() *logger.Logger {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Env: "development", Level: level})
}

// openPool abre el pool con --db o con la configuración del entorno.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	if dbURL != "" {
		return postgres.NewPoolFromDSN(ctx, dbURL)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return postgres.NewPool(ctx, cfg.DB)
}
