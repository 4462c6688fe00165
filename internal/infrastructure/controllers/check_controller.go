package controllers

import (
	"context"
	"encoding/json"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/isopennextyet/internal/domain/commands"
	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
	"github.com/rios0rios0/isopennextyet/internal/infrastructure/presenters/terminal"
)

// CheckController handles the "check" subcommand (one-shot mode).
type CheckController struct {
	command commands.Aggregate
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Aggregate) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Resolve the status once and print it",
		Long: `Fetch the adapter manifest and the tracking issue once, then print
the status as a terminal report, or as JSON with --json.`,
	}
}

// Execute runs a single resolution cycle and writes the result to stdout.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	data := it.command.Execute(context.Background(), settings)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if encodeErr := encoder.Encode(data); encodeErr != nil {
			logger.Errorf("failed to encode status: %v", encodeErr)
		}
		return
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), terminal.Render(settings, data))
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print the status as JSON")
}
