package storylocation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/cli-extension-story-reports/internal/storylocation"
)

func TestCachingResolver_ResolvesOncePerStory(t *testing.T) {
	loc := storylocation.Location{URL: "file:/root/classes", Name: "MyStory.story"}
	fake := storylocation.NewFakeResolver().WithLocation("MyStory.story", loc)
	resolver := storylocation.NewCachingResolver(fake)

	for range 3 {
		got, err := resolver.Resolve("MyStory.story")
		require.NoError(t, err)
		assert.Equal(t, loc, got)
	}

	assert.Equal(t, 1, fake.Calls("MyStory.story"))
}

func TestCachingResolver_DoesNotCacheFailures(t *testing.T) {
	fake := storylocation.NewFakeResolver().WithError(fmt.Errorf("boom"))
	resolver := storylocation.NewCachingResolver(fake)

	_, err := resolver.Resolve("MyStory.story")
	require.Error(t, err)
	_, err = resolver.Resolve("MyStory.story")
	require.Error(t, err)

	assert.Equal(t, 2, fake.Calls("MyStory.story"))
}
