package flags

import "github.com/spf13/pflag"

const (
	FlagReportDirectory = "report-dir"       // directory reports are written to, relative to the story location
	FlagReportExtension = "report-extension" // extension replacing the story file extension
	FlagCodeLocation    = "code-location"    // location relative story paths are resolved against
	FlagOverwrite       = "overwrite"        // truncate existing reports instead of appending
)

// ReportFlagSet returns the flag set configuring where story reports are written.
// Empty values select the defaults of the report configuration.
func ReportFlagSet(name string, errorHandling pflag.ErrorHandling) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, errorHandling)

	flagSet.String(FlagReportDirectory, "", "Directory, relative to the story location, reports are written to.")
	flagSet.String(FlagReportExtension, "", "File extension of the reports.")
	flagSet.String(FlagCodeLocation, "", "Location relative story paths are resolved against.")

	return flagSet
}
