package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
	"github.com/rios0rios0/isopennextyet/internal/domain/repositories"
	"github.com/rios0rios0/isopennextyet/internal/infrastructure/schemas"
)

const manifestSource = "manifest"

// ResolveVersion is the interface for the version resolver.
type ResolveVersion interface {
	Execute(ctx context.Context, settings *entities.Settings) entities.VersionResolution
}

// ResolveVersionCommand reads the adapter's package.json and decides whether
// its Next.js dependency has reached the target major version.
type ResolveVersionCommand struct {
	repository repositories.DocumentRepository
}

// NewResolveVersionCommand creates a new ResolveVersionCommand.
func NewResolveVersionCommand(repository repositories.DocumentRepository) *ResolveVersionCommand {
	return &ResolveVersionCommand{repository: repository}
}

// Execute never fails: on any error the fallback version info is returned
// alongside the cause.
func (it *ResolveVersionCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) entities.VersionResolution {
	info, err := it.resolve(ctx, settings)
	if err != nil {
		logger.WithFields(logger.Fields{
			"cycle":  entities.CycleID(ctx),
			"source": manifestSource,
			"kind":   entities.ErrorKind(err),
		}).Warnf("Error fetching OpenNextJS version: %v", err)

		return entities.VersionResolution{
			Info: entities.FallbackVersionInfo(err),
			Err:  err,
		}
	}

	return entities.VersionResolution{Info: info}
}

func (it *ResolveVersionCommand) resolve(
	ctx context.Context,
	settings *entities.Settings,
) (entities.VersionInfo, error) {
	fetchCtx, cancel := withRequestTimeout(ctx, settings)
	defer cancel()

	document, err := it.repository.FetchDocument(fetchCtx, entities.DocumentRequest{
		Source: manifestSource,
		URL:    settings.ManifestURL,
		Accept: entities.AcceptJSON,
	})
	if err != nil {
		return entities.VersionInfo{}, err
	}

	manifest, err := schemas.ValidateManifest(document)
	if err != nil {
		return entities.VersionInfo{}, err
	}

	version, err := schemas.ValidateVersionString(manifest.Dependencies.Next)
	if err != nil {
		return entities.VersionInfo{}, err
	}

	versionNumber, err := parseMajorVersion(version)
	if err != nil {
		return entities.VersionInfo{}, err
	}

	logger.Debugf("[%s] Next.js %s (major %d, target %d)",
		manifestSource, version, versionNumber, settings.TargetVersion)

	return entities.VersionInfo{
		IsTargetVersionYet: versionNumber >= settings.TargetVersion,
		VersionNumber:      versionNumber,
		Version:            version,
	}, nil
}

// parseMajorVersion returns the base-10 integer before the first dot.
func parseMajorVersion(version string) (int, error) {
	major, _, _ := strings.Cut(version, ".")
	number, err := strconv.Atoi(major)
	if err != nil {
		return 0, &entities.ParseError{
			Input: version,
			Err:   fmt.Errorf("could not parse version number: %w", err),
		}
	}
	return number, nil
}
