package reportfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/snyk/go-application-framework/pkg/configuration"
	"gopkg.in/yaml.v3"

	"github.com/snyk/cli-extension-story-reports/internal/flags"
)

const (
	// DefaultDirectory is the directory reports are written to when none is configured.
	DefaultDirectory = "jbehave-reports"
	// DefaultExtension is the report file extension used when none is configured.
	DefaultExtension = "html"
)

// Configuration holds the report directory, relative to the story location,
// and the report file extension. It is immutable; use a new Configuration to
// change either value.
type Configuration struct {
	directory string
	extension string
}

// ConfigurationOption overrides a default of NewConfiguration.
type ConfigurationOption func(*Configuration)

// WithDirectory sets the report directory. Empty values keep the default.
func WithDirectory(directory string) ConfigurationOption {
	return func(c *Configuration) {
		if directory != "" {
			c.directory = directory
		}
	}
}

// WithExtension sets the report file extension. Empty values keep the default.
func WithExtension(extension string) ConfigurationOption {
	return func(c *Configuration) {
		if extension != "" {
			c.extension = extension
		}
	}
}

// NewConfiguration returns the default configuration with opts applied.
func NewConfiguration(opts ...ConfigurationOption) Configuration {
	c := Configuration{
		directory: DefaultDirectory,
		extension: DefaultExtension,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Directory returns the report directory.
func (c Configuration) Directory() string {
	return c.directory
}

// Extension returns the report file extension, without a leading dot.
func (c Configuration) Extension() string {
	return c.extension
}

func (c Configuration) String() string {
	return fmt.Sprintf("{directory: %s, extension: %s}", c.directory, c.extension)
}

type configurationDocument struct {
	Directory string `yaml:"directory"`
	Extension string `yaml:"extension"`
}

// LoadConfiguration decodes a YAML document with optional "directory" and
// "extension" keys. An empty document yields the defaults.
func LoadConfiguration(r io.Reader) (Configuration, error) {
	var doc configurationDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Configuration{}, fmt.Errorf("failed to decode report configuration: %w", err)
	}
	return NewConfiguration(WithDirectory(doc.Directory), WithExtension(doc.Extension)), nil
}

// LoadConfigurationFile loads a YAML report configuration from path.
func LoadConfigurationFile(path string) (Configuration, error) {
	fd, err := os.Open(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to open report configuration: %w", err)
	}
	defer fd.Close()
	return LoadConfiguration(fd)
}

// ConfigurationFromSettings reads the report flags from config.
func ConfigurationFromSettings(config configuration.Configuration) Configuration {
	return NewConfiguration(
		WithDirectory(config.GetString(flags.FlagReportDirectory)),
		WithExtension(config.GetString(flags.FlagReportExtension)),
	)
}
