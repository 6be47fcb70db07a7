package errors

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	snyk_cli_errors "github.com/snyk/error-catalog-golang-public/cli"
)

// UnresolvableLocationError is returned when a story path cannot be mapped to
// a concrete location and logical name.
type UnresolvableLocationError struct {
	StoryPath string
	Reason    string
}

func (e *UnresolvableLocationError) Error() string {
	return fmt.Sprintf("unable to resolve location of story %q: %s", e.StoryPath, e.Reason)
}

// MalformedNameError is returned when a logical story name has no extension
// that could be replaced by the configured one.
type MalformedNameError struct {
	Name string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("story name %q has no extension to replace", e.Name)
}

// StreamCreationError is returned when the directories or the file backing a
// report stream could not be created.
type StreamCreationError struct {
	Path string
	Err  error
}

func (e *StreamCreationError) Error() string {
	return fmt.Sprintf("failed to create stream for file %s: %s", e.Path, e.Err)
}

// Unwrap implements error.
func (e *StreamCreationError) Unwrap() error {
	return e.Err
}

// StoryReportsError represents something gone wrong while writing story
// reports. It holds error details, but serializes to a human-friendly,
// customer facing message.
type StoryReportsError struct {
	err     error
	userMsg string
}

// Error implements error.
func (xerr StoryReportsError) Error() string {
	return xerr.userMsg
}

// Unwrap implements error.
func (xerr StoryReportsError) Unwrap() error {
	return xerr.err
}

// ErrorFactory creates errors for the story reports extension.
type ErrorFactory struct {
	logger *zerolog.Logger
}

// NewErrorFactory creates a new ErrorFactory.
func NewErrorFactory(logger *zerolog.Logger) *ErrorFactory {
	return &ErrorFactory{
		logger: logger,
	}
}

func (ef *ErrorFactory) newErr(err error, userMsg string) *StoryReportsError {
	ef.logger.Error().Err(err).Msg("story reports failure")

	return &StoryReportsError{
		err:     err,
		userMsg: userMsg,
	}
}

// NewReportLocationError creates an error for a story whose report file
// location could not be determined.
func (ef *ErrorFactory) NewReportLocationError(storyPath string, err error) *StoryReportsError {
	return ef.newErr(
		fmt.Errorf("resolve report file for %s: %w", storyPath, err),
		fmt.Sprintf("Unable to determine where to write the report for story '%s'.", storyPath),
	)
}

// NewReportWriteError creates an error for a report that could not be written.
func (ef *ErrorFactory) NewReportWriteError(path string, err error) *StoryReportsError {
	return ef.newErr(
		fmt.Errorf("write report %s: %w", path, err),
		fmt.Sprintf("Failed to write the report file %s.", path),
	)
}

// NewInvalidPayloadError creates an error for workflow data that does not carry bytes.
func (ef *ErrorFactory) NewInvalidPayloadError(storyPath string, payload any) *StoryReportsError {
	return ef.newErr(
		fmt.Errorf("invalid payload type %T for story %s", payload, storyPath),
		fmt.Sprintf("The report content for story '%s' could not be read.", storyPath),
	)
}

// NewInvalidReportFlagError creates an error for a report flag whose value
// cannot be used as a directory or file extension.
func (ef *ErrorFactory) NewInvalidReportFlagError(flag, value string) error {
	if strings.TrimSpace(value) == "" {
		return snyk_cli_errors.NewInvalidFlagOptionError(
			fmt.Sprintf("The option --%s requires a non-empty value.", flag),
		)
	}
	return snyk_cli_errors.NewInvalidFlagOptionError(
		fmt.Sprintf("The value '%s' is not valid for the option --%s.", value, flag),
	)
}
