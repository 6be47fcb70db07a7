// Package reportfile maps stories to the files their reports are written to
// and opens appendable streams over those files.
//
// The output file of a story lives in a configurable directory next to the
// location the story was loaded from, and carries a configurable extension in
// place of the story's own:
//
//	<parent of story location>/<directory>/<logical name without extension>.<extension>
package reportfile
