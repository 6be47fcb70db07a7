package outputworkflow

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// OutputDestination is an interface for output destinations.
type OutputDestination interface {
	Println(a ...any) (n int, err error)
	Remove(name string) error
	Fs() afero.Fs
}

// OutputDestinationImpl is an implementation of the OutputDestination interface.
type OutputDestinationImpl struct {
	fs     afero.Fs
	writer io.Writer
}

// Println prints arguments to the output destination.
func (odi *OutputDestinationImpl) Println(a ...any) (n int, err error) {
	n, err = fmt.Fprintln(odi.writer, a...)
	if err != nil {
		return n, fmt.Errorf("failed to print to output: %w", err)
	}
	return n, nil
}

// Remove removes a file from the output destination.
func (odi *OutputDestinationImpl) Remove(name string) error {
	if _, err := odi.fs.Stat(name); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	removeErr := odi.fs.Remove(name)
	if removeErr != nil {
		return fmt.Errorf("failed to remove file %s: %w", name, removeErr)
	}
	return nil
}

// Fs returns the filesystem reports are written to.
//
//nolint:ireturn // afero filesystems are used through their interface
func (odi *OutputDestinationImpl) Fs() afero.Fs {
	return odi.fs
}

// NewOutputDestination creates an output destination printing to stdout and
// writing reports to the OS filesystem.
//
//nolint:ireturn // the interface is designed to allow different implementations
func NewOutputDestination() OutputDestination {
	return NewOutputDestinationWith(afero.NewOsFs(), os.Stdout)
}

// NewOutputDestinationWith creates an output destination on the given filesystem and writer.
//
//nolint:ireturn // the interface is designed to allow different implementations
func NewOutputDestinationWith(fsys afero.Fs, writer io.Writer) OutputDestination {
	return &OutputDestinationImpl{fs: fsys, writer: writer}
}
