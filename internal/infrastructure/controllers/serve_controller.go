package controllers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/isopennextyet/internal/domain/commands"
	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
	"github.com/rios0rios0/isopennextyet/internal/infrastructure/presenters/web"
)

// ServeController handles the "serve" subcommand.
type ServeController struct {
	command commands.Aggregate
}

// NewServeController creates a new ServeController.
func NewServeController(command commands.Aggregate) *ServeController {
	return &ServeController{command: command}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Serve the status page over HTTP",
		Long: `Start the web server answering whether OpenNextJS Cloudflare uses the
target Next.js version yet.

Every request to the home page or to /api/status resolves the manifest and
the tracking issue again. The server stops gracefully on SIGINT or SIGTERM.`,
	}
}

// Execute starts the server and blocks until it is stopped.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		settings.ListenAddress = listen
	}

	server, err := web.NewServer(settings, it.command)
	if err != nil {
		logger.Errorf("failed to build server: %v", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("Starting %s on %s...", settings.SiteName, settings.ListenAddress)
	if serveErr := server.ListenAndServe(ctx); serveErr != nil {
		logger.Errorf("Server failed: %v", serveErr)
	}
}

// AddFlags adds the serve-specific flags to the given Cobra command.
func (it *ServeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("listen", "", "Address to listen on (overrides listen_address)")
}
