package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

const (
	DefaultManifestURL = "https://raw.githubusercontent.com/opennextjs/opennextjs-cloudflare/" +
		"refs/heads/main/create-cloudflare/next/package.json"
	DefaultIssueURL        = "https://api.github.com/repos/opennextjs/opennextjs-cloudflare/issues/972"
	DefaultIssuePageURL    = "https://github.com/opennextjs/opennextjs-cloudflare/issues/972"
	DefaultRepositoryURL   = "https://github.com/opennextjs/opennextjs-cloudflare"
	DefaultReleaseNotesURL = "https://nextjs.org/blog/next-16"
	DefaultTargetVersion   = 16
	DefaultIssueCreatedAt  = "2025-11-04"
	DefaultSiteName        = "Is Open Next 16 Yet?"
	DefaultBaseURL         = "http://localhost:3000"
	DefaultTwitterHandle   = "@opennextjs"
	DefaultListenAddress   = ":3000"
	DefaultRequestTimeout  = 15 * time.Second
)

// Settings is the explicit configuration handed to every command and
// presenter. Nothing in the resolution pipeline reads globals.
type Settings struct {
	ManifestURL     string
	IssueURL        string
	IssuePageURL    string
	RepositoryURL   string
	ReleaseNotesURL string
	TargetVersion   int
	IssueCreatedAt  time.Time
	SiteName        string
	BaseURL         string
	TwitterHandle   string
	ListenAddress   string
	RequestTimeout  time.Duration
}

// settingsFile mirrors Settings as it appears on disk. Every field is
// optional; unset values keep their defaults.
type settingsFile struct {
	ManifestURL     string `yaml:"manifest_url"      hcl:"manifest_url,optional"`
	IssueURL        string `yaml:"issue_url"         hcl:"issue_url,optional"`
	IssuePageURL    string `yaml:"issue_page_url"    hcl:"issue_page_url,optional"`
	RepositoryURL   string `yaml:"repository_url"    hcl:"repository_url,optional"`
	ReleaseNotesURL string `yaml:"release_notes_url" hcl:"release_notes_url,optional"`
	TargetVersion   int    `yaml:"target_version"    hcl:"target_version,optional"`
	IssueCreatedAt  string `yaml:"issue_created_at"  hcl:"issue_created_at,optional"`
	SiteName        string `yaml:"site_name"         hcl:"site_name,optional"`
	BaseURL         string `yaml:"base_url"          hcl:"base_url,optional"`
	TwitterHandle   string `yaml:"twitter_handle"    hcl:"twitter_handle,optional"`
	ListenAddress   string `yaml:"listen_address"    hcl:"listen_address,optional"`
	RequestTimeout  string `yaml:"request_timeout"   hcl:"request_timeout,optional"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// hclIdentifier matches environment names usable as env.NAME in HCL.
var hclIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

const configName = "isopennextyet"

//nolint:gochecknoglobals // read-only lookup tables
var (
	configPrefixes   = []string{".", ""}
	configExtensions = []string{".yaml", ".yml", ".hcl"}
)

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ManifestURL:     DefaultManifestURL,
		IssueURL:        DefaultIssueURL,
		IssuePageURL:    DefaultIssuePageURL,
		RepositoryURL:   DefaultRepositoryURL,
		ReleaseNotesURL: DefaultReleaseNotesURL,
		TargetVersion:   DefaultTargetVersion,
		IssueCreatedAt:  time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC),
		SiteName:        DefaultSiteName,
		BaseURL:         DefaultBaseURL,
		TwitterHandle:   DefaultTwitterHandle,
		ListenAddress:   DefaultListenAddress,
		RequestTimeout:  DefaultRequestTimeout,
	}
}

// NewSettings reads a YAML or HCL file and overlays it onto the defaults.
// The format is chosen by extension: ".hcl" is HCL, anything else YAML.
func NewSettings(path string) (*Settings, error) {
	var file settingsFile

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		if err := hclsimple.DecodeFile(path, hclEvalContext(), &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(expandEnv(data), &file); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	settings, err := file.overlay(DefaultSettings())
	if err != nil {
		return nil, err
	}
	if validateErr := ValidateSettings(settings); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// LoadSettings resolves the config file to use and loads it. An explicit
// path must exist; without one, a missing file means defaults.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return DefaultSettings(), nil
	}

	logger.Infof("Using config file: %s", found)
	return NewSettings(found)
}

// FindConfigFile looks for isopennextyet.{yaml,yml,hcl}, hidden or not, in
// the working directory, its .config and configs folders, then $HOME and
// $HOME/.config. A hidden file wins over a plain one in the same folder.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	for _, location := range locations {
		for _, prefix := range configPrefixes {
			for _, extension := range configExtensions {
				candidate := filepath.Join(location, prefix+configName+extension)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate, nil
				}
			}
		}
	}

	return "", fmt.Errorf("no %s config file found in %s", configName, strings.Join(locations, ", "))
}

// ValidateSettings checks that every value the pipeline relies on is usable.
func ValidateSettings(settings *Settings) error {
	urls := map[string]string{
		"manifest_url": settings.ManifestURL,
		"issue_url":    settings.IssueURL,
		"base_url":     settings.BaseURL,
	}
	for key, raw := range urls {
		if err := validateAbsoluteURL(raw); err != nil {
			return fmt.Errorf("%s is invalid: %w", key, err)
		}
	}

	if settings.TargetVersion <= 0 {
		return fmt.Errorf("target_version must be greater than zero, got %d", settings.TargetVersion)
	}
	if settings.IssueCreatedAt.IsZero() {
		return errors.New("issue_created_at is required")
	}
	if settings.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", settings.RequestTimeout)
	}
	if strings.TrimSpace(settings.SiteName) == "" {
		return errors.New("site_name is required")
	}
	return nil
}

func (f settingsFile) overlay(settings *Settings) (*Settings, error) {
	overlayString(&settings.ManifestURL, f.ManifestURL)
	overlayString(&settings.IssueURL, f.IssueURL)
	overlayString(&settings.IssuePageURL, f.IssuePageURL)
	overlayString(&settings.RepositoryURL, f.RepositoryURL)
	overlayString(&settings.ReleaseNotesURL, f.ReleaseNotesURL)
	overlayString(&settings.SiteName, f.SiteName)
	overlayString(&settings.BaseURL, f.BaseURL)
	overlayString(&settings.TwitterHandle, f.TwitterHandle)
	overlayString(&settings.ListenAddress, f.ListenAddress)

	if f.TargetVersion != 0 {
		settings.TargetVersion = f.TargetVersion
	}

	if f.IssueCreatedAt != "" {
		createdAt, err := ParseDate(f.IssueCreatedAt)
		if err != nil {
			return nil, fmt.Errorf("issue_created_at is invalid: %w", err)
		}
		settings.IssueCreatedAt = createdAt
	}

	if f.RequestTimeout != "" {
		timeout, err := time.ParseDuration(f.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("request_timeout is invalid: %w", err)
		}
		settings.RequestTimeout = timeout
	}

	return settings, nil
}

func overlayString(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func validateAbsoluteURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("expected an http(s) URL, got %q", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := string(envVarPattern.FindSubmatch(match)[1])
		if val := os.Getenv(varName); val != "" {
			return []byte(val)
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return nil
	})
}

// hclEvalContext exposes the process environment to HCL files as env.NAME.
func hclEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" || !hclIdentifier.MatchString(name) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
