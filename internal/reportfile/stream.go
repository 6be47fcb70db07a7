package reportfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/snyk/cli-extension-story-reports/internal/errors"
)

// StreamFactory opens report streams.
type StreamFactory interface {
	Open(path string) (io.WriteCloser, error)
}

// FileStreamFactory opens buffered streams appending to files of a filesystem.
type FileStreamFactory struct {
	fs     afero.Fs
	logger *zerolog.Logger
}

var _ StreamFactory = (*FileStreamFactory)(nil)

// StreamFactoryOption configures a FileStreamFactory.
type StreamFactoryOption func(*FileStreamFactory)

// WithFs makes the factory open files on fsys instead of the OS filesystem.
func WithFs(fsys afero.Fs) StreamFactoryOption {
	return func(f *FileStreamFactory) {
		f.fs = fsys
	}
}

// WithStreamLogger sets the logger of the factory.
func WithStreamLogger(logger *zerolog.Logger) StreamFactoryOption {
	return func(f *FileStreamFactory) {
		f.logger = logger
	}
}

// NewFileStreamFactory creates a factory backed by the OS filesystem unless configured otherwise.
func NewFileStreamFactory(opts ...StreamFactoryOption) *FileStreamFactory {
	nopLogger := zerolog.Nop()
	f := &FileStreamFactory{
		fs:     afero.NewOsFs(),
		logger: &nopLogger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open creates the missing parent directories of path and opens path for
// appending, creating it if needed. Failures are *errors.StreamCreationError.
func (f *FileStreamFactory) Open(path string) (io.WriteCloser, error) {
	if err := CreateFilePath(f.fs, path); err != nil {
		return nil, &errors.StreamCreationError{Path: path, Err: err}
	}

	file, err := f.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, Fileperm666)
	if err != nil {
		return nil, &errors.StreamCreationError{Path: path, Err: fmt.Errorf("failed to open file %s: %w", path, err)}
	}

	f.logger.Debug().Str("path", path).Msg("opened report stream")
	return &bufferedFileWriteCloser{
		Filename: path,
		buf:      bufio.NewWriter(file),
		file:     file,
	}, nil
}

type bufferedFileWriteCloser struct {
	Filename string
	buf      *bufio.Writer
	file     io.WriteCloser
}

// Write buffers data for the file.
func (wc *bufferedFileWriteCloser) Write(p []byte) (n int, err error) {
	n, writeErr := wc.buf.Write(p)
	if writeErr != nil {
		return n, fmt.Errorf("failed to write to file %s: %w", wc.Filename, writeErr)
	}
	return n, nil
}

// Close flushes buffered data and closes the file. The file is closed even if flushing fails.
func (wc *bufferedFileWriteCloser) Close() error {
	flushErr := wc.buf.Flush()
	closeErr := wc.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush file %s: %w", wc.Filename, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close file %s: %w", wc.Filename, closeErr)
	}
	return nil
}
