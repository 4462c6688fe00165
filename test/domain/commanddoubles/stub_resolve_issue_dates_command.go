//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync/atomic"

	"github.com/rios0rios0/isopennextyet/internal/domain/commands"
	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

// StubResolveIssueDatesCommand is a stub implementation of commands.ResolveIssueDates.
type StubResolveIssueDatesCommand struct {
	Resolution entities.IssueDatesResolution
	// PanicWith, when non-nil, makes Execute panic with this value.
	PanicWith any
	// CycleIDs records the cycle id seen on every call.
	CycleIDs chan string

	executeCallCount atomic.Int32
}

var _ commands.ResolveIssueDates = (*StubResolveIssueDatesCommand)(nil)

func (s *StubResolveIssueDatesCommand) Execute(
	ctx context.Context,
	_ *entities.Settings,
) entities.IssueDatesResolution {
	s.executeCallCount.Add(1)
	if s.CycleIDs != nil {
		s.CycleIDs <- entities.CycleID(ctx)
	}
	if s.PanicWith != nil {
		panic(s.PanicWith)
	}
	return s.Resolution
}

// ExecuteCallCount returns how many times Execute ran.
func (s *StubResolveIssueDatesCommand) ExecuteCallCount() int {
	return int(s.executeCallCount.Load())
}
