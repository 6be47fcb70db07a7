package reportfile

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/snyk/cli-extension-story-reports/internal/storylocation"
)

// StreamProvider creates the report stream of a story.
type StreamProvider interface {
	CreateStream() (io.WriteCloser, error)
}

// FileStreamProvider creates streams appending to the report file of one story.
type FileStreamProvider struct {
	paths   *PathResolver
	streams StreamFactory
	logger  *zerolog.Logger
}

var _ StreamProvider = (*FileStreamProvider)(nil)

type providerOptions struct {
	resolver storylocation.Resolver
	config   Configuration
	streams  StreamFactory
	logger   *zerolog.Logger
}

// ProviderOption configures a FileStreamProvider.
type ProviderOption func(*providerOptions)

// WithResolver sets the resolver used to locate the story.
func WithResolver(resolver storylocation.Resolver) ProviderOption {
	return func(o *providerOptions) {
		o.resolver = resolver
	}
}

// WithConfiguration sets the initial report configuration.
func WithConfiguration(config Configuration) ProviderOption {
	return func(o *providerOptions) {
		o.config = config
	}
}

// WithStreamFactory sets the factory opening report streams.
func WithStreamFactory(streams StreamFactory) ProviderOption {
	return func(o *providerOptions) {
		o.streams = streams
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) ProviderOption {
	return func(o *providerOptions) {
		o.logger = logger
	}
}

// NewFileStreamProvider resolves the report file of storyPath. Unless
// configured otherwise, only URLs and absolute story paths can be resolved,
// the default configuration applies and files are opened on the OS filesystem.
func NewFileStreamProvider(storyPath string, opts ...ProviderOption) (*FileStreamProvider, error) {
	nopLogger := zerolog.Nop()
	o := providerOptions{
		config: NewConfiguration(),
		logger: &nopLogger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.resolver == nil {
		o.resolver = storylocation.NewCodeLocationResolver("")
	}
	if o.streams == nil {
		o.streams = NewFileStreamFactory(WithStreamLogger(o.logger))
	}

	paths, err := NewPathResolver(storyPath, o.resolver, o.config)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().
		Str("story", storyPath).
		Str("output", paths.OutputFile()).
		Msg("resolved report file")

	return &FileStreamProvider{
		paths:   paths,
		streams: o.streams,
		logger:  o.logger,
	}, nil
}

// CreateStream opens a stream appending to the story's report file.
func (p *FileStreamProvider) CreateStream() (io.WriteCloser, error) {
	return p.streams.Open(p.paths.OutputFile()) //nolint:wrapcheck // already a StreamCreationError
}

// OutputFile returns the story's report file.
func (p *FileStreamProvider) OutputFile() string {
	return p.paths.OutputFile()
}

// UseConfiguration replaces the report configuration.
func (p *FileStreamProvider) UseConfiguration(config Configuration) {
	p.paths.UseConfiguration(config)
	p.logger.Debug().
		Stringer("configuration", config).
		Str("output", p.paths.OutputFile()).
		Msg("report configuration replaced")
}
