//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

const (
	TestManifestURL = "https://manifest.example.com/package.json"
	TestIssueURL    = "https://api.example.com/repos/acme/adapter/issues/1"
	TestBaseURL     = "https://status.example.com"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	manifestURL    string
	issueURL       string
	baseURL        string
	siteName       string
	twitterHandle  string
	listenAddress  string
	targetVersion  int
	issueCreatedAt time.Time
	requestTimeout time.Duration
}

// NewSettingsBuilder creates a new settings builder pointing at test URLs.
func NewSettingsBuilder() *SettingsBuilder {
	b := &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *SettingsBuilder) defaults() {
	b.manifestURL = TestManifestURL
	b.issueURL = TestIssueURL
	b.baseURL = TestBaseURL
	b.siteName = entities.DefaultSiteName
	b.twitterHandle = entities.DefaultTwitterHandle
	b.listenAddress = "127.0.0.1:0"
	b.targetVersion = entities.DefaultTargetVersion
	b.issueCreatedAt = time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC)
	b.requestTimeout = time.Second
}

// WithManifestURL sets the manifest URL.
func (b *SettingsBuilder) WithManifestURL(url string) *SettingsBuilder {
	b.manifestURL = url
	return b
}

// WithIssueURL sets the issue API URL.
func (b *SettingsBuilder) WithIssueURL(url string) *SettingsBuilder {
	b.issueURL = url
	return b
}

// WithBaseURL sets the public base URL.
func (b *SettingsBuilder) WithBaseURL(url string) *SettingsBuilder {
	b.baseURL = url
	return b
}

// WithTargetVersion sets the target major version.
func (b *SettingsBuilder) WithTargetVersion(version int) *SettingsBuilder {
	b.targetVersion = version
	return b
}

// WithIssueCreatedAt sets the configured issue creation date.
func (b *SettingsBuilder) WithIssueCreatedAt(createdAt time.Time) *SettingsBuilder {
	b.issueCreatedAt = createdAt
	return b
}

// WithRequestTimeout sets the per-request timeout.
func (b *SettingsBuilder) WithRequestTimeout(timeout time.Duration) *SettingsBuilder {
	b.requestTimeout = timeout
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		ManifestURL:     b.manifestURL,
		IssueURL:        b.issueURL,
		IssuePageURL:    entities.DefaultIssuePageURL,
		RepositoryURL:   entities.DefaultRepositoryURL,
		ReleaseNotesURL: entities.DefaultReleaseNotesURL,
		TargetVersion:   b.targetVersion,
		IssueCreatedAt:  b.issueCreatedAt,
		SiteName:        b.siteName,
		BaseURL:         b.baseURL,
		TwitterHandle:   b.twitterHandle,
		ListenAddress:   b.listenAddress,
		RequestTimeout:  b.requestTimeout,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	clone := *b
	clone.BaseBuilder = b.BaseBuilder.Clone().(*testkit.BaseBuilder)
	return &clone
}
