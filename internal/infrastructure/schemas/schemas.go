// Package schemas validates the shape of the documents the resolvers fetch
// and of the scalar strings extracted from them.
package schemas

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

const (
	manifestSchemaURL = "manifest.schema.json"
	issueSchemaURL    = "issue.schema.json"
)

//go:embed manifest.schema.json
var manifestSchema []byte

//go:embed issue.schema.json
var issueSchema []byte

var (
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+`)

	printer = message.NewPrinter(language.English)

	compiled = sync.OnceValues(compileSchemas)
)

type schemaSet struct {
	manifest *jsonschema.Schema
	issue    *jsonschema.Schema
}

// ValidateManifest checks that value is an object with a dependencies object
// holding a non-empty string "next".
func ValidateManifest(value any) (entities.ManifestDocument, error) {
	set, err := compiled()
	if err != nil {
		return entities.ManifestDocument{}, err
	}
	if validateErr := validate(set.manifest, value, "manifest"); validateErr != nil {
		return entities.ManifestDocument{}, validateErr
	}

	object, _ := value.(map[string]any)
	dependencies, _ := object["dependencies"].(map[string]any)
	next, _ := dependencies["next"].(string)

	return entities.ManifestDocument{
		Dependencies: entities.ManifestDependencies{Next: next},
	}, nil
}

// ValidateIssueRecord checks that value is an object whose created_at,
// updated_at and closed_at, when present, are date-time strings or null.
func ValidateIssueRecord(value any) (entities.IssueRecord, error) {
	set, err := compiled()
	if err != nil {
		return entities.IssueRecord{}, err
	}
	if validateErr := validate(set.issue, value, "issue record"); validateErr != nil {
		return entities.IssueRecord{}, validateErr
	}

	object, _ := value.(map[string]any)
	var record entities.IssueRecord
	fields := map[string]**time.Time{
		"created_at": &record.CreatedAt,
		"updated_at": &record.UpdatedAt,
		"closed_at":  &record.ClosedAt,
	}
	for key, target := range fields {
		parsed, dateErr := optionalDate(object, key)
		if dateErr != nil {
			return entities.IssueRecord{}, dateErr
		}
		*target = parsed
	}
	return record, nil
}

// ValidateVersionString checks that value is a string starting with
// MAJOR.MINOR.PATCH whose major component is greater than zero. Leading
// zeros and extra components are accepted.
func ValidateVersionString(value any) (string, error) {
	version, ok := value.(string)
	if !ok {
		return "", &entities.SchemaError{
			Subject:  "version string",
			Messages: []string{fmt.Sprintf("expected string, got %T", value)},
		}
	}

	var messages []string
	triple := versionPattern.FindString(version)
	if triple == "" {
		messages = append(messages, fmt.Sprintf("%q does not start with MAJOR.MINOR.PATCH", version))
	} else {
		major, err := strconv.Atoi(strings.SplitN(triple, ".", 2)[0])
		switch {
		case err != nil:
			messages = append(messages, fmt.Sprintf("major version of %q is out of range", version))
		case major <= 0:
			messages = append(messages, fmt.Sprintf("major version of %q must be greater than zero", version))
		}
		if !semver.IsValid("v" + triple) {
			logger.Debugf("Version %q is not canonical semver, accepting it anyway", version)
		}
	}

	if len(messages) > 0 {
		return "", &entities.SchemaError{Subject: "version string", Messages: messages}
	}
	return version, nil
}

// ValidateDateString checks that value is a string denoting a valid instant.
func ValidateDateString(value any) (string, error) {
	date, ok := value.(string)
	if !ok {
		return "", &entities.SchemaError{
			Subject:  "date string",
			Messages: []string{fmt.Sprintf("expected string, got %T", value)},
		}
	}
	if _, err := entities.ParseDate(date); err != nil {
		return "", err
	}
	return date, nil
}

func compileSchemas() (*schemaSet, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()

	resources := map[string][]byte{
		manifestSchemaURL: manifestSchema,
		issueSchemaURL:    issueSchema,
	}
	for url, raw := range resources {
		document, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse schema %s: %w", url, err)
		}
		if addErr := compiler.AddResource(url, document); addErr != nil {
			return nil, fmt.Errorf("failed to add schema %s: %w", url, addErr)
		}
	}

	manifest, err := compiler.Compile(manifestSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", manifestSchemaURL, err)
	}
	issue, err := compiler.Compile(issueSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", issueSchemaURL, err)
	}

	return &schemaSet{manifest: manifest, issue: issue}, nil
}

func validate(schema *jsonschema.Schema, value any, subject string) error {
	err := schema.Validate(value)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return &entities.SchemaError{Subject: subject, Messages: []string{err.Error()}}
	}

	var messages []string
	collectMessages(validationErr, &messages)
	return &entities.SchemaError{Subject: subject, Messages: messages}
}

// collectMessages flattens the validation tree into one message per leaf.
func collectMessages(err *jsonschema.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		*messages = append(*messages, fmt.Sprintf(
			"at %s: %s", instancePointer(err.InstanceLocation), err.ErrorKind.LocalizedString(printer),
		))
		return
	}
	for _, cause := range err.Causes {
		collectMessages(cause, messages)
	}
}

func instancePointer(location []string) string {
	if len(location) == 0 {
		return "(root)"
	}
	return "/" + strings.Join(location, "/")
}

func optionalDate(object map[string]any, key string) (*time.Time, error) {
	raw, ok := object[key].(string)
	if !ok {
		return nil, nil //nolint:nilnil // absent and null both mean unknown
	}
	parsed, err := entities.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
