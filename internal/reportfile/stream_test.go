package reportfile_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/cli-extension-story-reports/internal/errors"
	"github.com/snyk/cli-extension-story-reports/internal/reportfile"
)

func writeAndClose(t *testing.T, factory reportfile.StreamFactory, path, content string) {
	t.Helper()

	stream, err := factory.Open(path)
	require.NoError(t, err)
	_, err = io.WriteString(stream, content)
	require.NoError(t, err)
	require.NoError(t, stream.Close())
}

func TestFileStreamFactory_CreatesParentDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	factory := reportfile.NewFileStreamFactory(reportfile.WithFs(fsys))

	writeAndClose(t, factory, "/root/jbehave-reports/nested/MyStory.html", "<html/>")

	isDir, err := afero.IsDir(fsys, "/root/jbehave-reports/nested")
	require.NoError(t, err)
	assert.True(t, isDir)

	content, err := afero.ReadFile(fsys, "/root/jbehave-reports/nested/MyStory.html")
	require.NoError(t, err)
	assert.Equal(t, "<html/>", string(content))
}

func TestFileStreamFactory_DirectoryCreationIsIdempotent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	factory := reportfile.NewFileStreamFactory(reportfile.WithFs(fsys))

	writeAndClose(t, factory, "/root/jbehave-reports/First.html", "first")
	writeAndClose(t, factory, "/root/jbehave-reports/Second.html", "second")

	exists, err := afero.Exists(fsys, "/root/jbehave-reports/Second.html")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileStreamFactory_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jbehave-reports", "MyStory.txt")
	factory := reportfile.NewFileStreamFactory()

	writeAndClose(t, factory, path, "first run\n")
	writeAndClose(t, factory, path, "second run\n")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first run\nsecond run\n", string(content))
}

func TestFileStreamFactory_BuffersUntilClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "MyStory.txt")
	factory := reportfile.NewFileStreamFactory()

	stream, err := factory.Open(path)
	require.NoError(t, err)
	_, err = io.WriteString(stream, "buffered")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, content)

	require.NoError(t, stream.Close())
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "buffered", string(content))
}

func TestFileStreamFactory_DirectoryCreationFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "jbehave-reports")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))
	path := filepath.Join(blocker, "MyStory.html")

	_, err := reportfile.NewFileStreamFactory().Open(path)

	var streamErr *errors.StreamCreationError
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, path, streamErr.Path)
	assert.Error(t, streamErr.Err)
}

func TestFileStreamFactory_OpenFailure(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/root/jbehave-reports", reportfile.Fileperm755))
	factory := reportfile.NewFileStreamFactory(reportfile.WithFs(afero.NewReadOnlyFs(fsys)))

	_, err := factory.Open("/root/jbehave-reports/MyStory.html")

	var streamErr *errors.StreamCreationError
	require.ErrorAs(t, err, &streamErr)
	assert.Equal(t, "/root/jbehave-reports/MyStory.html", streamErr.Path)
}
