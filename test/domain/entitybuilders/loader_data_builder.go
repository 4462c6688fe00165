//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

// LoaderDataBuilder helps create rendered status records.
type LoaderDataBuilder struct {
	*testkit.BaseBuilder
	data entities.LoaderData
}

// NewLoaderDataBuilder creates a record for an open issue on Next.js 15.
func NewLoaderDataBuilder() *LoaderDataBuilder {
	b := &LoaderDataBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *LoaderDataBuilder) defaults() {
	updated := 3
	b.data = entities.LoaderData{
		VersionInfo: entities.VersionInfo{
			IsTargetVersionYet: false,
			VersionNumber:      15,
			Version:            "15.5.6",
		},
		IssueDates: entities.IssueDates{
			DaysSinceCreation: 42,
			DaysSinceUpdate:   &updated,
		},
	}
}

// WithVersion sets the version string and major number.
func (b *LoaderDataBuilder) WithVersion(version string, number int, reached bool) *LoaderDataBuilder {
	b.data.Version = version
	b.data.VersionNumber = number
	b.data.IsTargetVersionYet = reached
	return b
}

// WithDaysSinceCreation sets the creation day count.
func (b *LoaderDataBuilder) WithDaysSinceCreation(days int) *LoaderDataBuilder {
	b.data.DaysSinceCreation = days
	return b
}

// WithClosed marks the issue closed days ago.
func (b *LoaderDataBuilder) WithClosed(days int) *LoaderDataBuilder {
	b.data.IsClosed = true
	b.data.DaysSinceClose = &days
	return b
}

// WithoutUpdate clears the update day count.
func (b *LoaderDataBuilder) WithoutUpdate() *LoaderDataBuilder {
	b.data.DaysSinceUpdate = nil
	return b
}

// WithError sets the error message.
func (b *LoaderDataBuilder) WithError(message string) *LoaderDataBuilder {
	b.data.Error = message
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *LoaderDataBuilder) Build() interface{} {
	return b.BuildLoaderData()
}

// BuildLoaderData creates the record with a concrete return type.
func (b *LoaderDataBuilder) BuildLoaderData() entities.LoaderData {
	return b.data
}

// Reset clears the builder state, allowing it to be reused.
func (b *LoaderDataBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the LoaderDataBuilder.
func (b *LoaderDataBuilder) Clone() testkit.Builder {
	clone := *b
	clone.BaseBuilder = b.BaseBuilder.Clone().(*testkit.BaseBuilder)
	return &clone
}
