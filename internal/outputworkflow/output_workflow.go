package outputworkflow

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/snyk/go-application-framework/pkg/configuration"
	"github.com/snyk/go-application-framework/pkg/workflow"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/snyk/cli-extension-story-reports/internal/errors"
	"github.com/snyk/cli-extension-story-reports/internal/flags"
	"github.com/snyk/cli-extension-story-reports/internal/reportfile"
	"github.com/snyk/cli-extension-story-reports/internal/storylocation"
)

// WorkflowID identifies the story reports output workflow.
var WorkflowID workflow.Identifier = workflow.NewWorkflowIdentifier("storyreports_output")

// InitOutputWorkflow initializes the output workflow.
// The output workflow writes every input carrying a story path as content
// location to the report file of that story.
func InitOutputWorkflow(engine workflow.Engine) error {
	outputConfig := flags.ReportFlagSet("storyreports_output", pflag.ContinueOnError)
	outputConfig.Bool(flags.FlagOverwrite, false, "Replace existing reports instead of appending to them.")
	outputConfig.Bool(OutputConfigKeyNoOutput, false, "Do not print the paths of written reports.")

	entry, err := engine.Register(WorkflowID, workflow.ConfigurationOptionsFromFlagset(outputConfig), outputWorkflowEntryPointImpl)
	if err != nil {
		return fmt.Errorf("failed to register output workflow: %w", err)
	}
	entry.SetVisibility(false)
	return nil
}

type reportJob struct {
	index    int
	provider *reportfile.FileStreamProvider
	payload  []byte
}

// EntryPoint defines the output entry point.
// the entry point is called by the engine when the workflow is invoked.
func EntryPoint(invocation workflow.InvocationContext, input []workflow.Data, outputDestination OutputDestination) ([]workflow.Data, error) {
	config := invocation.GetConfiguration()
	debugLogger := invocation.GetEnhancedLogger()
	errFactory := errors.NewErrorFactory(debugLogger)

	extension := config.GetString(flags.FlagReportExtension)
	if strings.ContainsAny(extension, `/\`) {
		return nil, errFactory.NewInvalidReportFlagError(flags.FlagReportExtension, extension)
	}

	resolver := storylocation.NewCachingResolver(
		storylocation.NewCodeLocationResolver(config.GetString(flags.FlagCodeLocation)))
	streams := reportfile.NewFileStreamFactory(
		reportfile.WithFs(outputDestination.Fs()),
		reportfile.WithStreamLogger(debugLogger))

	output := []workflow.Data{}
	jobsByFile := map[string][]reportJob{}
	files := []string{}

	for i := range input {
		storyPath := input[i].GetContentLocation()
		if storyPath == "" {
			// output all unhandled data
			output = append(output, input[i])
			continue
		}

		payload, ok := input[i].GetPayload().([]byte)
		if !ok {
			return nil, errFactory.NewInvalidPayloadError(storyPath, input[i].GetPayload())
		}

		reportConfig := reportConfiguration(config, input[i].GetContentType())
		provider, err := reportfile.NewFileStreamProvider(storyPath,
			reportfile.WithResolver(resolver),
			reportfile.WithConfiguration(reportConfig),
			reportfile.WithStreamFactory(streams),
			reportfile.WithLogger(debugLogger))
		if err != nil {
			return nil, errFactory.NewReportLocationError(storyPath, err)
		}

		file := provider.OutputFile()
		if _, seen := jobsByFile[file]; !seen {
			files = append(files, file)
		}
		jobsByFile[file] = append(jobsByFile[file], reportJob{index: i, provider: provider, payload: payload})
	}

	if config.GetBool(flags.FlagOverwrite) {
		for _, file := range files {
			if err := outputDestination.Remove(file); err != nil {
				return nil, errFactory.NewReportWriteError(file, err)
			}
		}
	}

	// reports sharing a file are appended in input order by a single goroutine
	g := new(errgroup.Group)
	g.SetLimit(max(1, config.GetInt(configuration.MAX_THREADS)))
	for _, file := range files {
		jobs := jobsByFile[file]
		g.Go(func() error {
			for _, job := range jobs {
				if err := writeReport(job); err != nil {
					return errFactory.NewReportWriteError(file, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // already a user facing error
	}

	for _, file := range files {
		for _, job := range jobsByFile[file] {
			output = append(output, newReportFileData(input[job.index], file, debugLogger))
		}
		debugLogger.Info().Str("path", file).Int("reports", len(jobsByFile[file])).Msg("story report written")
		if !config.GetBool(OutputConfigKeyNoOutput) {
			if _, err := outputDestination.Println("Story report written to", file); err != nil {
				return nil, err //nolint:wrapcheck // already wrapped by the destination
			}
		}
	}

	return output, nil
}

func writeReport(job reportJob) error {
	stream, err := job.provider.CreateStream()
	if err != nil {
		return err //nolint:wrapcheck // StreamCreationError carries the path
	}
	_, writeErr := stream.Write(job.payload)
	closeErr := stream.Close()
	if writeErr != nil {
		return writeErr //nolint:wrapcheck // wrapped by the stream
	}
	return closeErr //nolint:wrapcheck // wrapped by the stream
}

// reportConfiguration is the configured report configuration, with the
// extension derived from the content type unless one is configured.
func reportConfiguration(config configuration.Configuration, contentType string) reportfile.Configuration {
	settings := reportfile.ConfigurationFromSettings(config)
	if config.GetString(flags.FlagReportExtension) != "" {
		return settings
	}
	mediaType, _, _ := strings.Cut(contentType, ";")
	return reportfile.NewConfiguration(
		reportfile.WithDirectory(settings.Directory()),
		reportfile.WithExtension(contentTypeExtensions[strings.ToLower(strings.TrimSpace(mediaType))]),
	)
}

func newReportFileData(input workflow.Data, file string, logger *zerolog.Logger) workflow.Data {
	workflowID := workflow.NewTypeIdentifier(WorkflowID, "report-file")
	return workflow.NewData(
		workflowID,
		ReportFileContentType,
		[]byte(file),
		workflow.WithInputData(input),
		workflow.WithLogger(logger))
}

func outputWorkflowEntryPointImpl(invocation workflow.InvocationContext, input []workflow.Data) (output []workflow.Data, err error) {
	outputDestination := NewOutputDestination()
	return EntryPoint(invocation, input, outputDestination)
}
