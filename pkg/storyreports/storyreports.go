package storyreports

import (
	"fmt"

	"github.com/snyk/go-application-framework/pkg/workflow"

	"github.com/snyk/cli-extension-story-reports/internal/outputworkflow"
)

func Init(e workflow.Engine) error {
	// register "storyreports_output" workflow
	if err := outputworkflow.InitOutputWorkflow(e); err != nil {
		return fmt.Errorf("error while registering story reports output workflow: %w", err)
	}

	return nil
}
