package storylocation

import (
	"path/filepath"
	"strings"

	"github.com/snyk/cli-extension-story-reports/internal/errors"
)

var urlSchemes = []string{"file:", "http:", "https:", "jar:"}

// Location is the resolved source of a story.
type Location struct {
	// URL is where the story was loaded from, possibly prefixed by a scheme:
	// the story itself for URLs and absolute paths, the code location otherwise.
	URL string
	// Name is the normalized logical name of the story.
	Name string
}

// Resolver resolves a story path into its Location.
type Resolver interface {
	Resolve(storyPath string) (Location, error)
}

// CodeLocationResolver resolves story paths relative to a code location.
type CodeLocationResolver struct {
	codeLocation string
}

var _ Resolver = (*CodeLocationResolver)(nil)

// NewCodeLocationResolver creates a resolver for stories found below codeLocation,
// which may be a directory path or a file: URL.
func NewCodeLocationResolver(codeLocation string) *CodeLocationResolver {
	if codeLocation != "" && !strings.HasSuffix(codeLocation, "/") {
		codeLocation += "/"
	}
	return &CodeLocationResolver{codeLocation: codeLocation}
}

// CodeLocation returns the code location, always ending with a slash unless empty.
func (r *CodeLocationResolver) CodeLocation() string {
	return r.codeLocation
}

// Resolve implements Resolver.
func (r *CodeLocationResolver) Resolve(storyPath string) (Location, error) {
	if strings.TrimSpace(storyPath) == "" {
		return Location{}, &errors.UnresolvableLocationError{StoryPath: storyPath, Reason: "empty story path"}
	}

	switch {
	case IsURL(storyPath):
		return Location{
			URL:  storyPath,
			Name: NormalizeName(strings.Replace(storyPath, r.codeLocation, "", 1)),
		}, nil
	case filepath.IsAbs(storyPath):
		name := storyPath
		if codeDir := stripFileScheme(r.codeLocation); codeDir != "" && strings.HasPrefix(storyPath, codeDir) {
			name = strings.TrimPrefix(storyPath, codeDir)
		}
		return Location{URL: storyPath, Name: NormalizeName(name)}, nil
	case r.codeLocation == "":
		return Location{}, &errors.UnresolvableLocationError{StoryPath: storyPath, Reason: "relative story path without a code location"}
	default:
		return Location{URL: strings.TrimSuffix(r.codeLocation, "/"), Name: NormalizeName(storyPath)}, nil
	}
}

// IsURL reports whether storyPath starts with one of the supported URL schemes.
func IsURL(storyPath string) bool {
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(storyPath, scheme) {
			return true
		}
	}
	return false
}

// NormalizeName flattens a hierarchical story name into a dotted one:
// leading separators are dropped and every "/" or "\" becomes ".".
func NormalizeName(name string) string {
	name = strings.TrimLeft(name, `/\`)
	return strings.NewReplacer("/", ".", `\`, ".").Replace(name)
}

func stripFileScheme(location string) string {
	return strings.TrimPrefix(location, "file:")
}
