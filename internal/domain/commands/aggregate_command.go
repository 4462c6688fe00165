package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

// Aggregate is the interface for the full resolution cycle.
type Aggregate interface {
	Execute(ctx context.Context, settings *entities.Settings) entities.LoaderData
}

// AggregateCommand runs both resolvers concurrently and merges their results
// into the single record the presenters render.
type AggregateCommand struct {
	resolveVersion    ResolveVersion
	resolveIssueDates ResolveIssueDates
}

// NewAggregateCommand creates a new AggregateCommand.
func NewAggregateCommand(
	resolveVersion ResolveVersion,
	resolveIssueDates ResolveIssueDates,
) *AggregateCommand {
	return &AggregateCommand{
		resolveVersion:    resolveVersion,
		resolveIssueDates: resolveIssueDates,
	}
}

// Execute returns only after both resolvers finished. If either of them
// breaks its own contract and panics, the whole record is the fallback.
func (it *AggregateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) entities.LoaderData {
	cycleID := uuid.NewString()
	ctx = entities.WithCycleID(ctx, cycleID)
	entry := logger.WithField("cycle", cycleID)

	var (
		version entities.VersionResolution
		dates   entities.IssueDatesResolution
		group   errgroup.Group
	)

	group.Go(recovered("version", func() {
		version = it.resolveVersion.Execute(ctx, settings)
	}))
	group.Go(recovered("issue dates", func() {
		dates = it.resolveIssueDates.Execute(ctx, settings)
	}))

	if err := group.Wait(); err != nil {
		entry.Errorf("Error resolving status, serving fallback data: %v", err)
		return entities.FallbackLoaderData(err)
	}

	report(entry, version, dates)
	return entities.MergeLoaderData(version.Info, dates.Dates)
}

// recovered turns a panic inside task into an error for the group.
func recovered(task string, fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s resolver panicked: %v", task, r)
			}
		}()
		fn()
		return nil
	}
}

func report(
	entry *logger.Entry,
	version entities.VersionResolution,
	dates entities.IssueDatesResolution,
) {
	switch {
	case version.Succeeded() && dates.Succeeded():
		entry.Debugf("Resolved Next.js %s, issue closed: %v",
			version.Info.Version, dates.Dates.IsClosed)
	case !version.Succeeded() && !dates.Succeeded():
		entry.WithFields(logger.Fields{
			"version": entities.ErrorKind(version.Err),
			"issue":   entities.ErrorKind(dates.Err),
		}).Warn("Both sources unavailable, serving fallback data")
	case !version.Succeeded():
		entry.WithField("version", entities.ErrorKind(version.Err)).
			Info("Manifest unavailable, serving fallback version")
	default:
		entry.WithField("issue", entities.ErrorKind(dates.Err)).
			Info("Issue unavailable, update and close dates unknown")
	}
}
