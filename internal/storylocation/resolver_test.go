package storylocation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/cli-extension-story-reports/internal/errors"
	"github.com/snyk/cli-extension-story-reports/internal/storylocation"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"slashes", "com/example/MyStory.story", "com.example.MyStory.story"},
		{"leading slash", "/com/example/MyStory.story", "com.example.MyStory.story"},
		{"backslashes", `com\example\MyStory.story`, "com.example.MyStory.story"},
		{"flat", "MyStory.story", "MyStory.story"},
		{"already dotted", "com.example.MyStory.story", "com.example.MyStory.story"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, storylocation.NormalizeName(tc.input))
		})
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, storylocation.IsURL("file:/root/MyStory.story"))
	assert.True(t, storylocation.IsURL("jar:file:/root/stories.jar!/MyStory.story"))
	assert.True(t, storylocation.IsURL("https://example.com/MyStory.story"))
	assert.False(t, storylocation.IsURL("com/example/MyStory.story"))
	assert.False(t, storylocation.IsURL("/root/MyStory.story"))
}

func TestCodeLocationResolver_Resolve(t *testing.T) {
	resolver := storylocation.NewCodeLocationResolver("file:/root/classes")

	t.Run("relative story path resolves to the code location", func(t *testing.T) {
		loc, err := resolver.Resolve("com/example/MyStory.story")

		require.NoError(t, err)
		assert.Equal(t, "file:/root/classes", loc.URL)
		assert.Equal(t, "com.example.MyStory.story", loc.Name)
	})

	t.Run("url below the code location is named relative to it", func(t *testing.T) {
		loc, err := resolver.Resolve("file:/root/classes/com/example/MyStory.story")

		require.NoError(t, err)
		assert.Equal(t, "file:/root/classes/com/example/MyStory.story", loc.URL)
		assert.Equal(t, "com.example.MyStory.story", loc.Name)
	})

	t.Run("url elsewhere keeps its full path as name", func(t *testing.T) {
		loc, err := resolver.Resolve("file:/tmp/MyStory.story")

		require.NoError(t, err)
		assert.Equal(t, "file:/tmp/MyStory.story", loc.URL)
		assert.Equal(t, "file:.tmp.MyStory.story", loc.Name)
	})

	t.Run("absolute path below the code location", func(t *testing.T) {
		loc, err := resolver.Resolve("/root/classes/com/example/MyStory.story")

		require.NoError(t, err)
		assert.Equal(t, "/root/classes/com/example/MyStory.story", loc.URL)
		assert.Equal(t, "com.example.MyStory.story", loc.Name)
	})

	t.Run("absolute path elsewhere", func(t *testing.T) {
		loc, err := resolver.Resolve("/tmp/MyStory.story")

		require.NoError(t, err)
		assert.Equal(t, "tmp.MyStory.story", loc.Name)
	})

	t.Run("empty story path", func(t *testing.T) {
		_, err := resolver.Resolve("  ")

		var locErr *errors.UnresolvableLocationError
		require.ErrorAs(t, err, &locErr)
		assert.Equal(t, "  ", locErr.StoryPath)
	})
}

func TestCodeLocationResolver_WithoutCodeLocation(t *testing.T) {
	resolver := storylocation.NewCodeLocationResolver("")

	_, err := resolver.Resolve("com/example/MyStory.story")

	var locErr *errors.UnresolvableLocationError
	require.ErrorAs(t, err, &locErr)

	loc, err := resolver.Resolve("/root/MyStory.story")
	require.NoError(t, err)
	assert.Equal(t, "root.MyStory.story", loc.Name)
}

func TestCodeLocationResolver_AppendsTrailingSlash(t *testing.T) {
	assert.Equal(t, "/root/classes/", storylocation.NewCodeLocationResolver("/root/classes").CodeLocation())
	assert.Equal(t, "/root/classes/", storylocation.NewCodeLocationResolver("/root/classes/").CodeLocation())
}
