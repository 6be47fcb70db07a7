// Package storylocation resolves story paths into the location of the story
// source and the flat, dotted logical name used to derive report file names.
//
// A story path is either a URL (file:, http:, https: or jar:), an absolute
// filesystem path or a path relative to a code location, typically the root
// directory stories are loaded from.
package storylocation
