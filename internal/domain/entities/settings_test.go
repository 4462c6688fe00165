//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should overlay YAML values onto the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "isopennextyet.yaml", `
target_version: 17
issue_created_at: "2026-01-15T08:30:00Z"
base_url: https://isopennext.example.org
request_timeout: 5s
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, 17, settings.TargetVersion)
		assert.Equal(t, time.Date(2026, time.January, 15, 8, 30, 0, 0, time.UTC), settings.IssueCreatedAt)
		assert.Equal(t, "https://isopennext.example.org", settings.BaseURL)
		assert.Equal(t, 5*time.Second, settings.RequestTimeout)
		assert.Equal(t, entities.DefaultManifestURL, settings.ManifestURL)
		assert.Equal(t, entities.DefaultSiteName, settings.SiteName)
	})

	t.Run("should expand environment variables in YAML", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_ISOPENNEXT_BASE_URL", "https://from-env.example.org")
		path := writeConfig(t, "isopennextyet.yaml", "base_url: ${TEST_ISOPENNEXT_BASE_URL}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://from-env.example.org", settings.BaseURL)
	})

	t.Run("should read HCL files with env references", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_ISOPENNEXT_HANDLE", "@example")
		path := writeConfig(t, "isopennextyet.hcl", `
site_name      = "Is It Yet?"
target_version = 18
twitter_handle = env.TEST_ISOPENNEXT_HANDLE
listen_address = "127.0.0.1:8080"
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Is It Yet?", settings.SiteName)
		assert.Equal(t, 18, settings.TargetVersion)
		assert.Equal(t, "@example", settings.TwitterHandle)
		assert.Equal(t, "127.0.0.1:8080", settings.ListenAddress)
	})

	t.Run("should reject an invalid request timeout", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "isopennextyet.yaml", "request_timeout: soon\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request_timeout is invalid")
	})

	t.Run("should reject an invalid creation date", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "isopennextyet.yaml", "issue_created_at: not-a-date\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "issue_created_at is invalid")
	})

	t.Run("should reject a relative manifest URL", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "isopennextyet.yaml", "manifest_url: /package.json\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "manifest_url is invalid")
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		assert.Error(t, err)
	})
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should pass validation", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()

		// when
		err := entities.ValidateSettings(settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, 16, settings.TargetVersion)
		assert.Equal(t, 15*time.Second, settings.RequestTimeout)
		assert.Equal(t, "2025-11-04", settings.IssueCreatedAt.Format(time.DateOnly))
	})
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*entities.Settings)
		message string
	}{
		{
			name:    "should reject a non-http issue URL",
			mutate:  func(s *entities.Settings) { s.IssueURL = "ftp://example.com/issue" },
			message: "issue_url is invalid",
		},
		{
			name:    "should reject a zero target version",
			mutate:  func(s *entities.Settings) { s.TargetVersion = 0 },
			message: "target_version must be greater than zero",
		},
		{
			name:    "should reject a missing creation date",
			mutate:  func(s *entities.Settings) { s.IssueCreatedAt = time.Time{} },
			message: "issue_created_at is required",
		},
		{
			name:    "should reject a non-positive timeout",
			mutate:  func(s *entities.Settings) { s.RequestTimeout = 0 },
			message: "request_timeout must be positive",
		},
		{
			name:    "should reject a blank site name",
			mutate:  func(s *entities.Settings) { s.SiteName = "  " },
			message: "site_name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			settings := entities.DefaultSettings()
			tt.mutate(settings)

			// when
			err := entities.ValidateSettings(settings)

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	t.Run("should load the explicit path", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "custom.yml", "site_name: Custom\n")

		// when
		settings, err := entities.LoadSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Custom", settings.SiteName)
	})
}

//nolint:paralleltest // t.Chdir and t.Setenv change process-wide state
func TestFindConfigFile(t *testing.T) {
	t.Run("should prefer the hidden file in the working directory", func(t *testing.T) {
		// given
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("HOME", t.TempDir())
		require.NoError(t, os.WriteFile("isopennextyet.yaml", []byte("site_name: Plain\n"), 0o600))
		require.NoError(t, os.WriteFile(".isopennextyet.hcl", []byte("site_name = \"Hidden\"\n"), 0o600))

		// when
		found, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".isopennextyet.hcl", found)
	})

	t.Run("should fall back to the configs folder and then the home directory", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		home := t.TempDir()
		t.Setenv("HOME", home)
		homeConfig := filepath.Join(home, ".config", "isopennextyet.yml")
		require.NoError(t, os.MkdirAll(filepath.Dir(homeConfig), 0o700))
		require.NoError(t, os.WriteFile(homeConfig, []byte("site_name: Home\n"), 0o600))

		// when
		found, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, homeConfig, found)

		// given
		require.NoError(t, os.Mkdir("configs", 0o700))
		require.NoError(t, os.WriteFile(filepath.Join("configs", "isopennextyet.yaml"), []byte("{}\n"), 0o600))

		// when
		found, err = entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("configs", "isopennextyet.yaml"), found)
	})

	t.Run("should skip directories and report a miss", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())
		require.NoError(t, os.Mkdir(".isopennextyet.yaml", 0o700))

		// when
		_, err := entities.FindConfigFile()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no isopennextyet config file found")
	})
}
