//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/isopennextyet/internal/domain/commands"
	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
	"github.com/rios0rios0/isopennextyet/test/domain/commanddoubles"
	"github.com/rios0rios0/isopennextyet/test/domain/entitybuilders"
	"github.com/rios0rios0/isopennextyet/test/infrastructure/repositorydoubles"
)

func TestAggregateCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should merge both resolutions when both succeed", func(t *testing.T) {
		t.Parallel()

		// given
		version := &commanddoubles.StubResolveVersionCommand{
			Resolution: entities.VersionResolution{Info: entities.VersionInfo{
				IsTargetVersionYet: true,
				VersionNumber:      16,
				Version:            "16.0.1",
			}},
		}
		dates := &commanddoubles.StubResolveIssueDatesCommand{
			Resolution: entities.IssueDatesResolution{Dates: entities.IssueDates{
				DaysSinceCreation: 30,
				DaysSinceUpdate:   intPtr(1),
				DaysSinceClose:    intPtr(0),
				IsClosed:          true,
			}},
		}
		command := commands.NewAggregateCommand(version, dates)
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		data := command.Execute(context.Background(), settings)

		// then
		expected := entities.LoaderData{
			VersionInfo: version.Resolution.Info,
			IssueDates:  dates.Resolution.Dates,
		}
		if diff := cmp.Diff(expected, data); diff != "" {
			t.Errorf("unexpected loader data (-want +got):\n%s", diff)
		}
		assert.False(t, data.HasError())
		assert.Equal(t, 1, version.ExecuteCallCount())
		assert.Equal(t, 1, dates.ExecuteCallCount())
	})

	t.Run("should expose every key of both records exactly once", func(t *testing.T) {
		t.Parallel()

		// given
		command := commands.NewAggregateCommand(
			&commanddoubles.StubResolveVersionCommand{
				Resolution: entities.VersionResolution{Info: entities.VersionInfo{VersionNumber: 15, Version: "15.5.6"}},
			},
			&commanddoubles.StubResolveIssueDatesCommand{},
		)

		// when
		data := command.Execute(context.Background(), entitybuilders.NewSettingsBuilder().BuildSettings())
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		var keys map[string]any
		require.NoError(t, json.Unmarshal(raw, &keys))

		// then
		assert.ElementsMatch(t, []string{
			"isTargetVersionYet", "versionNumber", "version",
			"daysSinceCreation", "daysSinceUpdate", "daysSinceClose", "isClosed",
		}, mapKeys(keys))
	})

	t.Run("should keep the issue dates when only the version falls back", func(t *testing.T) {
		t.Parallel()

		// given
		cause := &entities.FetchError{URL: entitybuilders.TestManifestURL, StatusCode: 500, Status: "500 Internal Server Error"}
		version := &commanddoubles.StubResolveVersionCommand{
			Resolution: entities.VersionResolution{Info: entities.FallbackVersionInfo(cause), Err: cause},
		}
		dates := &commanddoubles.StubResolveIssueDatesCommand{
			Resolution: entities.IssueDatesResolution{Dates: entities.IssueDates{
				DaysSinceCreation: 12,
				DaysSinceUpdate:   intPtr(2),
			}},
		}
		command := commands.NewAggregateCommand(version, dates)

		// when
		data := command.Execute(context.Background(), entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		assert.True(t, data.HasError())
		assert.Equal(t, "15.x.x (error loading)", data.Version)
		assert.Equal(t, 12, data.DaysSinceCreation)
		assert.Equal(t, intPtr(2), data.DaysSinceUpdate)
	})

	t.Run("should return the full fallback when a resolver panics", func(t *testing.T) {
		t.Parallel()

		// given
		version := &commanddoubles.StubResolveVersionCommand{
			Resolution: entities.VersionResolution{Info: entities.VersionInfo{VersionNumber: 16, Version: "16.0.0"}},
		}
		dates := &commanddoubles.StubResolveIssueDatesCommand{PanicWith: "environment exploded"}
		command := commands.NewAggregateCommand(version, dates)

		// when
		data := command.Execute(context.Background(), entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		assert.Equal(t, entities.VersionInfo{
			IsTargetVersionYet: false,
			VersionNumber:      15,
			Version:            "15.x.x (error loading)",
			Error:              "issue dates resolver panicked: environment exploded",
		}, data.VersionInfo)
		assert.Equal(t, entities.IssueDates{}, data.IssueDates)
		assert.Equal(t, 1, version.ExecuteCallCount())
	})

	t.Run("should tag both resolvers with the same cycle id", func(t *testing.T) {
		t.Parallel()

		// given
		dates := &commanddoubles.StubResolveIssueDatesCommand{CycleIDs: make(chan string, 1)}
		command := commands.NewAggregateCommand(&commanddoubles.StubResolveVersionCommand{}, dates)

		// when
		command.Execute(context.Background(), entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		cycleID := <-dates.CycleIDs
		_, err := uuid.Parse(cycleID)
		assert.NoError(t, err)
	})
}

func TestAggregateCommand_Execute_Pipeline(t *testing.T) {
	t.Parallel()

	t.Run("should resolve both sources through one repository", func(t *testing.T) {
		t.Parallel()

		// given
		now := time.Date(2025, time.December, 1, 12, 0, 0, 0, time.UTC)
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		repository := repositorydoubles.NewSpyDocumentRepository().
			WithDocument(settings.ManifestURL,
				entitybuilders.NewManifestDocumentBuilder().WithNext("16.1.0").BuildDocument()).
			WithDocument(settings.IssueURL,
				entitybuilders.NewIssueDocumentBuilder().WithClosedAt("2025-11-30T00:00:00Z").BuildDocument())
		command := commands.NewAggregateCommand(
			commands.NewResolveVersionCommand(repository),
			commands.NewResolveIssueDatesCommand(repository, fixedClock(now)),
		)

		// when
		data := command.Execute(context.Background(), settings)

		// then
		expected := entities.LoaderData{
			VersionInfo: entities.VersionInfo{
				IsTargetVersionYet: true,
				VersionNumber:      16,
				Version:            "16.1.0",
			},
			IssueDates: entities.IssueDates{
				DaysSinceCreation: 27,
				DaysSinceUpdate:   intPtr(11),
				DaysSinceClose:    intPtr(1),
				IsClosed:          true,
			},
		}
		if diff := cmp.Diff(expected, data); diff != "" {
			t.Errorf("unexpected loader data (-want +got):\n%s", diff)
		}
		assert.Equal(t, 2, repository.RequestCount())
	})

	t.Run("should degrade independently when both sources are down", func(t *testing.T) {
		t.Parallel()

		// given
		now := time.Date(2025, time.December, 1, 12, 0, 0, 0, time.UTC)
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		repository := repositorydoubles.NewSpyDocumentRepository()
		command := commands.NewAggregateCommand(
			commands.NewResolveVersionCommand(repository),
			commands.NewResolveIssueDatesCommand(repository, fixedClock(now)),
		)

		// when
		data := command.Execute(context.Background(), settings)

		// then
		assert.True(t, data.HasError())
		assert.Equal(t, 15, data.VersionNumber)
		assert.Equal(t, 27, data.DaysSinceCreation)
		assert.Nil(t, data.DaysSinceUpdate)
		assert.Nil(t, data.DaysSinceClose)
		assert.False(t, data.IsClosed)
	})
}

func mapKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	return keys
}
