package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
	"github.com/rios0rios0/isopennextyet/internal/domain/repositories"
	"github.com/rios0rios0/isopennextyet/internal/infrastructure/schemas"
)

const issueSource = "issue"

// ResolveIssueDates is the interface for the issue date resolver.
type ResolveIssueDates interface {
	Execute(ctx context.Context, settings *entities.Settings) entities.IssueDatesResolution
}

// ResolveIssueDatesCommand computes how long the tracked issue has been open,
// when it last changed and whether it was closed.
type ResolveIssueDatesCommand struct {
	repository repositories.DocumentRepository
	clock      entities.Clock
}

// NewResolveIssueDatesCommand creates a new ResolveIssueDatesCommand.
func NewResolveIssueDatesCommand(
	repository repositories.DocumentRepository,
	clock entities.Clock,
) *ResolveIssueDatesCommand {
	return &ResolveIssueDatesCommand{
		repository: repository,
		clock:      clock,
	}
}

// Execute never fails. The creation count comes from the configured creation
// date and survives any network failure; update and close counts degrade to
// unknown.
func (it *ResolveIssueDatesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) entities.IssueDatesResolution {
	now := it.clock()
	dates := entities.IssueDates{
		DaysSinceCreation: entities.DaysSinceCreation(settings.IssueCreatedAt, now),
	}

	record, err := it.fetchRecord(ctx, settings)
	if err != nil {
		logger.WithFields(logger.Fields{
			"cycle":  entities.CycleID(ctx),
			"source": issueSource,
			"kind":   entities.ErrorKind(err),
		}).Warnf("Error fetching GitHub issue: %v", err)

		return entities.IssueDatesResolution{Dates: dates, Err: err}
	}

	dates.DaysSinceUpdate = entities.DaysSince(record.UpdatedAt, now)
	dates.DaysSinceClose = entities.DaysSince(record.ClosedAt, now)
	dates.IsClosed = record.ClosedAt != nil

	return entities.IssueDatesResolution{Dates: dates}
}

func (it *ResolveIssueDatesCommand) fetchRecord(
	ctx context.Context,
	settings *entities.Settings,
) (entities.IssueRecord, error) {
	fetchCtx, cancel := withRequestTimeout(ctx, settings)
	defer cancel()

	document, err := it.repository.FetchDocument(fetchCtx, entities.DocumentRequest{
		Source: issueSource,
		URL:    settings.IssueURL,
		Accept: entities.AcceptGitHubV3,
	})
	if err != nil {
		return entities.IssueRecord{}, err
	}

	return schemas.ValidateIssueRecord(document)
}
