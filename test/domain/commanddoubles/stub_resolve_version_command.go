//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync/atomic"

	"github.com/rios0rios0/isopennextyet/internal/domain/commands"
	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

// StubResolveVersionCommand is a stub implementation of commands.ResolveVersion.
type StubResolveVersionCommand struct {
	Resolution entities.VersionResolution
	// PanicWith, when non-nil, makes Execute panic with this value.
	PanicWith any

	executeCallCount atomic.Int32
}

var _ commands.ResolveVersion = (*StubResolveVersionCommand)(nil)

func (s *StubResolveVersionCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
) entities.VersionResolution {
	s.executeCallCount.Add(1)
	if s.PanicWith != nil {
		panic(s.PanicWith)
	}
	return s.Resolution
}

// ExecuteCallCount returns how many times Execute ran.
func (s *StubResolveVersionCommand) ExecuteCallCount() int {
	return int(s.executeCallCount.Load())
}
