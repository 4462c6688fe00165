package entities

const (
	fallbackVersionNumber = 15
	fallbackVersion       = "15.x.x (error loading)"
)

// ManifestDocument is the validated subset of the adapter's package.json.
type ManifestDocument struct {
	Dependencies ManifestDependencies
}

// ManifestDependencies holds the dependency versions we care about.
type ManifestDependencies struct {
	Next string
}

// VersionInfo describes the upstream framework version the adapter depends on.
type VersionInfo struct {
	IsTargetVersionYet bool   `json:"isTargetVersionYet"`
	VersionNumber      int    `json:"versionNumber"`
	Version            string `json:"version"`
	Error              string `json:"error,omitempty"`
}

// VersionResolution is the outcome of one version lookup. Info is always
// usable: when Err is set it holds the fallback answer.
type VersionResolution struct {
	Info VersionInfo
	Err  error
}

// Succeeded reports whether Info came from a validated manifest.
func (r VersionResolution) Succeeded() bool { return r.Err == nil }

// FallbackVersionInfo is shown whenever the manifest cannot be resolved.
// It assumes the target version is not supported yet.
func FallbackVersionInfo(cause error) VersionInfo {
	message := "Unknown error"
	if cause != nil {
		message = cause.Error()
	}
	return VersionInfo{
		IsTargetVersionYet: false,
		VersionNumber:      fallbackVersionNumber,
		Version:            fallbackVersion,
		Error:              message,
	}
}
