// Command storyreport appends its standard input to the report file of a story.
//
//	storyreport [--report-dir DIR] [--report-extension EXT] [--code-location LOC] [--config FILE] STORY_PATH
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/snyk/cli-extension-story-reports/internal/flags"
	"github.com/snyk/cli-extension-story-reports/internal/reportfile"
	"github.com/snyk/cli-extension-story-reports/internal/storylocation"
)

const (
	flagConfig = "config"
	flagDebug  = "debug"
)

func main() {
	flagSet := flags.ReportFlagSet("storyreport", pflag.ExitOnError)
	flagSet.String(flagConfig, "", "YAML file with the report directory and extension.")
	flagSet.Bool(flagDebug, false, "Log debug output to stderr.")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if flagSet.NArg() != 1 {
		log.Fatalf("usage: storyreport [flags] STORY_PATH\n%s", flagSet.FlagUsages())
	}

	path, err := run(flagSet, flagSet.Arg(0), os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(path)
}

func run(flagSet *pflag.FlagSet, storyPath string, content io.Reader) (string, error) {
	logger := newLogger(flagSet)

	config, err := configuration(flagSet)
	if err != nil {
		return "", err
	}
	codeLocation, _ := flagSet.GetString(flags.FlagCodeLocation)

	provider, err := reportfile.NewFileStreamProvider(storyPath,
		reportfile.WithResolver(storylocation.NewCodeLocationResolver(codeLocation)),
		reportfile.WithConfiguration(config),
		reportfile.WithLogger(&logger))
	if err != nil {
		return "", fmt.Errorf("failed to resolve report file: %w", err)
	}

	stream, err := provider.CreateStream()
	if err != nil {
		return "", fmt.Errorf("failed to open report file: %w", err)
	}
	_, copyErr := io.Copy(stream, content)
	closeErr := stream.Close()
	if copyErr != nil {
		return "", fmt.Errorf("failed to write report: %w", copyErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to write report: %w", closeErr)
	}
	return provider.OutputFile(), nil
}

// configuration reads the report configuration from the config file, if any,
// with the report flags taking precedence.
func configuration(flagSet *pflag.FlagSet) (reportfile.Configuration, error) {
	config := reportfile.NewConfiguration()
	if path, _ := flagSet.GetString(flagConfig); path != "" {
		loaded, err := reportfile.LoadConfigurationFile(path)
		if err != nil {
			return reportfile.Configuration{}, err //nolint:wrapcheck // already describes the file
		}
		config = loaded
	}

	directory, _ := flagSet.GetString(flags.FlagReportDirectory)
	extension, _ := flagSet.GetString(flags.FlagReportExtension)
	return reportfile.NewConfiguration(
		reportfile.WithDirectory(config.Directory()),
		reportfile.WithExtension(config.Extension()),
		reportfile.WithDirectory(directory),
		reportfile.WithExtension(extension),
	), nil
}

func newLogger(flagSet *pflag.FlagSet) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug, _ := flagSet.GetBool(flagDebug); debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
