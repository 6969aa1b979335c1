package lessons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# Sample Lesson

Intro paragraph.

## Tables

| a | b |
|---|---|
| 1 | 2 |

## Code

` + "```ts\nconst x = 1;\n```\n"

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(t.TempDir())
}

func writeLesson(t *testing.T, svc *Service, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(svc.Dir, name), []byte(content), 0644))
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("week1-typescript-basics.md"))

	assert.False(t, ValidName(""))
	assert.False(t, ValidName("notes.txt"))
	assert.False(t, ValidName("../secrets.md"))
	assert.False(t, ValidName("..\\secrets.md"))
	assert.False(t, ValidName("sub/dir.md"))
	assert.False(t, ValidName("week1..md"))
}

func TestReadRejectsTraversal(t *testing.T) {
	svc := newTestService(t)

	// Plant a file one level above the lesson directory.
	outside := filepath.Join(filepath.Dir(svc.Dir), "secrets.md")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))

	_, err := svc.Read("../secrets.md")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestReadMissingFile(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Read("nope.md")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteValidation(t *testing.T) {
	svc := newTestService(t)

	assert.ErrorIs(t, svc.Write("../evil.md", "x"), ErrInvalidName)
	assert.ErrorIs(t, svc.Write("evil.txt", "x"), ErrInvalidName)

	require.NoError(t, svc.Write("notes.md", "fresh content"))
	content, err := svc.Read("notes.md")
	require.NoError(t, err)
	assert.Equal(t, "fresh content", content)

	// Writes replace the full content, nothing is merged.
	require.NoError(t, svc.Write("notes.md", "short"))
	content, err = svc.Read("notes.md")
	require.NoError(t, err)
	assert.Equal(t, "short", content)
}

func TestRender(t *testing.T) {
	svc := newTestService(t)
	writeLesson(t, svc, "sample.md", sample)

	rendered, err := svc.Render("sample.md")
	require.NoError(t, err)

	assert.Equal(t, "Sample Lesson", rendered.Title)
	assert.Contains(t, rendered.HTML, "<table>")
	assert.Contains(t, rendered.HTML, "<pre><code")
	assert.Contains(t, rendered.TOC, "Tables")
	assert.Contains(t, rendered.TOC, "Code")
}

func TestRenderTitleFallsBackToFilename(t *testing.T) {
	svc := newTestService(t)
	writeLesson(t, svc, "my-lesson-notes.md", "no heading here, just text\n")

	rendered, err := svc.Render("my-lesson-notes.md")
	require.NoError(t, err)
	assert.Equal(t, "My Lesson Notes", rendered.Title)
}

func TestRenderNavigationFollowsManifest(t *testing.T) {
	svc := newTestService(t)
	for _, info := range Manifest {
		writeLesson(t, svc, info.File, "# "+info.Title+"\n")
	}

	first, err := svc.Render(Manifest[0].File)
	require.NoError(t, err)
	assert.Nil(t, first.Prev)
	require.NotNil(t, first.Next)
	assert.Equal(t, Manifest[1].File, first.Next.File)

	middle, err := svc.Render(Manifest[2].File)
	require.NoError(t, err)
	require.NotNil(t, middle.Prev)
	require.NotNil(t, middle.Next)
	assert.Equal(t, Manifest[1].File, middle.Prev.File)
	assert.Equal(t, Manifest[3].File, middle.Next.File)

	last, err := svc.Render(Manifest[len(Manifest)-1].File)
	require.NoError(t, err)
	require.NotNil(t, last.Prev)
	assert.Nil(t, last.Next)
}
