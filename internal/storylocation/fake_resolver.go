package storylocation

import (
	"github.com/snyk/cli-extension-story-reports/internal/errors"
)

// FakeResolver resolves story paths from a fixed table.
type FakeResolver struct {
	locations map[string]Location
	calls     map[string]int
	err       error
}

var _ Resolver = (*FakeResolver)(nil)

// NewFakeResolver creates a new fake resolver without any known story.
func NewFakeResolver() *FakeResolver {
	return &FakeResolver{
		locations: make(map[string]Location),
		calls:     make(map[string]int),
	}
}

// WithLocation registers the location returned for storyPath.
func (f *FakeResolver) WithLocation(storyPath string, loc Location) *FakeResolver {
	f.locations[storyPath] = loc
	return f
}

// WithError configures the fake to return an error.
func (f *FakeResolver) WithError(err error) *FakeResolver {
	f.err = err
	return f
}

// Calls returns how often storyPath was resolved.
func (f *FakeResolver) Calls(storyPath string) int {
	return f.calls[storyPath]
}

// Resolve implements Resolver.
func (f *FakeResolver) Resolve(storyPath string) (Location, error) {
	f.calls[storyPath]++
	if f.err != nil {
		return Location{}, f.err
	}
	loc, ok := f.locations[storyPath]
	if !ok {
		return Location{}, &errors.UnresolvableLocationError{StoryPath: storyPath, Reason: "unknown story"}
	}
	return loc, nil
}
