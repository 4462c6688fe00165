package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

// loadSettings reads the --config flag, inherited from the root command.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return entities.LoadSettings(configPath)
}
