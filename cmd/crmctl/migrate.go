package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate [up|down|version]",
		Short: "Aplica o revierte las migraciones embebidas",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica todas las migraciones pendientes",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error { return m.Up() })
		},
	})

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revierte migraciones (--steps 0 = todas)",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error { return m.Down(steps) })
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "número de migraciones a revertir; 0 revierte todas")
	migrateCmd.AddCommand(downCmd)

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Muestra la versión actual del esquema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				v, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("versión %d (dirty=%t)\n", v, dirty)
				return nil
			})
		},
	})
	return migrateCmd
}

func withMigrator(fn func(m *postgres.Migrator) error) error {
	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		return err
	}
	defer m.Close()
	if err := fn(m); err != nil {
		return err
	}
	log.Info().Msg("migraciones: listo")
	return nil
}
