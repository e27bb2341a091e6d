package main

import (
	"github.com/spf13/cobra"

	"github.com/itchan-dev/boards/internal/config"
	"github.com/itchan-dev/boards/internal/logger"
)

const configFolderFlag = "config_folder"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "boards",
		Short:         "Discussion boards API server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String(configFolderFlag, "config", "path to folder with public.yaml and private.yaml")

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newGrantAdminCommand())
	return root
}

// loadConfig reads the config folder and sets up the global logger from it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	folder, err := cmd.Flags().GetString(configFolderFlag)
	if err != nil {
		return nil, err
	}
	cfg := config.MustLoad(folder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)
	return cfg, nil
}
