package main

import (
	"github.com/spf13/cobra"

	"github.com/itchan-dev/boards/internal/logger"
	"github.com/itchan-dev/boards/internal/storage/pg"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			storage, err := pg.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer storage.Cleanup()

			if err := storage.Migrate(cmd.Context()); err != nil {
				return err
			}
			logger.Log.Info("schema is up to date")
			return nil
		},
	}
}
