//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/isopennextyet/internal/domain/commands"
	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

// StubAggregateCommand is a stub implementation of commands.Aggregate.
type StubAggregateCommand struct {
	mu sync.Mutex

	Data entities.LoaderData
	// PanicWith, when non-nil, makes Execute panic with this value.
	PanicWith        any
	ExecuteCallCount int
	LastSettings     *entities.Settings
}

var _ commands.Aggregate = (*StubAggregateCommand)(nil)

func (s *StubAggregateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) entities.LoaderData {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ExecuteCallCount++
	s.LastSettings = settings
	if s.PanicWith != nil {
		panic(s.PanicWith)
	}
	return s.Data
}
