package entities

import (
	"time"

	"go.uber.org/dig"
)

// Clock returns the current instant. Commands take one so tests can pin "now".
type Clock func() time.Time

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings requires a config file path, loaded by the controllers layer
	return container.Provide(func() Clock { return time.Now })
}
