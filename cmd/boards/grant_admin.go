package main

import (
	"github.com/spf13/cobra"

	"github.com/itchan-dev/boards/internal/jwt"
	"github.com/itchan-dev/boards/internal/logger"
	"github.com/itchan-dev/boards/internal/service"
	"github.com/itchan-dev/boards/internal/storage/pg"
)

func newGrantAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grant-admin <username>",
		Short: "Give a user admin rights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			storage, err := pg.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer storage.Cleanup()

			auth := service.NewAuth(storage, jwt.New(cfg.JwtKey(), cfg.JwtTTL()))
			if err := auth.GrantAdmin(cmd.Context(), args[0]); err != nil {
				return err
			}
			logger.Log.Info("admin granted", "username", args[0])
			return nil
		},
	}
}
