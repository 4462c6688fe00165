package entities

// LoaderData is the flat record consumed by every presenter.
type LoaderData struct {
	VersionInfo
	IssueDates
}

// HasError reports whether any part of the record is fallback data.
func (d LoaderData) HasError() bool { return d.Error != "" }

// MergeLoaderData combines the two independent resolutions into one record.
func MergeLoaderData(version VersionInfo, dates IssueDates) LoaderData {
	return LoaderData{
		VersionInfo: version,
		IssueDates:  dates,
	}
}

// FallbackLoaderData is returned when the resolution cycle itself breaks
// down, outside of what either resolver absorbs.
func FallbackLoaderData(cause error) LoaderData {
	return LoaderData{
		VersionInfo: FallbackVersionInfo(cause),
		IssueDates: IssueDates{
			DaysSinceCreation: 0,
			DaysSinceUpdate:   nil,
			DaysSinceClose:    nil,
			IsClosed:          false,
		},
	}
}
