package reportfile

import (
	"path/filepath"
	"strings"

	"github.com/snyk/cli-extension-story-reports/internal/errors"
	"github.com/snyk/cli-extension-story-reports/internal/storylocation"
)

// PathResolver maps one story to its report file. The story is resolved once;
// the output file is recomputed only when the configuration is replaced.
type PathResolver struct {
	storyPath  string
	baseDir    string
	stem       string
	config     Configuration
	outputFile string
}

// NewPathResolver resolves storyPath and computes its output file under config.
// Errors from resolver are returned unchanged.
func NewPathResolver(storyPath string, resolver storylocation.Resolver, config Configuration) (*PathResolver, error) {
	loc, err := resolver.Resolve(storyPath)
	if err != nil {
		return nil, err //nolint:wrapcheck // resolution failures are surfaced as is
	}
	stem, err := nameStem(loc.Name)
	if err != nil {
		return nil, err
	}

	r := &PathResolver{
		storyPath: storyPath,
		baseDir:   baseDirectory(loc.URL),
		stem:      stem,
		config:    config,
	}
	r.recompute()
	return r, nil
}

// StoryPath returns the story path the resolver was created for.
func (r *PathResolver) StoryPath() string {
	return r.storyPath
}

// OutputFile returns the report file of the story under the current configuration.
func (r *PathResolver) OutputFile() string {
	return r.outputFile
}

// Configuration returns the current configuration.
func (r *PathResolver) Configuration() Configuration {
	return r.config
}

// UseConfiguration replaces the configuration and recomputes the output file.
func (r *PathResolver) UseConfiguration(config Configuration) {
	r.config = config
	r.recompute()
}

func (r *PathResolver) recompute() {
	r.outputFile = outputFile(r.baseDir, r.stem, r.config)
}

// ComputeOutputFile returns the report file for a resolved story location.
func ComputeOutputFile(loc storylocation.Location, config Configuration) (string, error) {
	stem, err := nameStem(loc.Name)
	if err != nil {
		return "", err
	}
	return outputFile(baseDirectory(loc.URL), stem, config), nil
}

func outputFile(baseDir, stem string, config Configuration) string {
	return filepath.Join(baseDir, config.Directory(), stem+"."+config.Extension())
}

// baseDirectory is the parent directory of a location, without any file: scheme.
func baseDirectory(location string) string {
	return filepath.Dir(strings.TrimPrefix(location, "file:"))
}

// nameStem drops the extension of a logical name. A name has to carry an
// extension, and something before it.
func nameStem(name string) (string, error) {
	name = storylocation.NormalizeName(name)
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return "", &errors.MalformedNameError{Name: name}
	}
	return name[:idx], nil
}
