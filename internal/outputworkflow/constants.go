package outputworkflow

const (
	// OutputConfigKeyNoOutput is a constant for the no output configuration key that allows switching off outputs.
	OutputConfigKeyNoOutput = "no-output"
	// ReportFileContentType is the content type of the data returned for every written report.
	ReportFileContentType = "text/plain; schema=story-report-file"
)

// contentTypeExtensions maps report content types to report file extensions.
var contentTypeExtensions = map[string]string{
	"text/html":        "html",
	"application/xml":  "xml",
	"text/xml":         "xml",
	"application/json": "json",
	"text/plain":       "txt",
}
