package repositories

import (
	"go.uber.org/dig"

	ghRepo "github.com/rios0rios0/isopennextyet/internal/infrastructure/repositories/github"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Both documents live on GitHub hosts, so one HTTP repository serves them
	if err := container.Provide(ghRepo.NewGitHubDocumentRepository); err != nil {
		return err
	}

	return nil
}
