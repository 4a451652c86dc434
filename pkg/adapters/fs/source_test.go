package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/silt/pkg/core"
	"github.com/aretw0/silt/pkg/frontmatter"
)

// setupContent writes a small content tree and returns an initialized source.
func setupContent(t *testing.T, files map[string]string) *Source {
	t.Helper()
	tmp := t.TempDir()

	for name, content := range files {
		path := filepath.Join(tmp, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	source := NewSource(Config{Root: tmp})
	require.NoError(t, source.Initialize(context.Background()))
	return source
}

func TestSource_Get(t *testing.T) {
	source := setupContent(t, map[string]string{
		"welcome.md": "---\ntitle: Welcome\nlayout: post\n---\nHello, reader.",
	})

	doc, err := source.Get(context.Background(), "welcome")
	require.NoError(t, err)

	assert.Equal(t, "welcome", doc.ID)
	assert.Equal(t, "Hello, reader.", doc.Body)
	assert.Equal(t, core.Metadata{"title": "Welcome", "layout": "post"}, doc.Metadata)
}

func TestSource_Get_NotFound(t *testing.T) {
	source := setupContent(t, nil)

	_, err := source.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSource_Get_NoFrontMatter(t *testing.T) {
	source := setupContent(t, map[string]string{
		"plain.md": "No front matter here",
	})

	doc, err := source.Get(context.Background(), "plain")
	require.NoError(t, err)
	assert.Empty(t, doc.Metadata)
	assert.Equal(t, "No front matter here", doc.Body)
}

func TestSource_List(t *testing.T) {
	source := setupContent(t, map[string]string{
		"welcome.md":                   "---\ntitle: Welcome\n---\nHello.",
		"posts/2015-01-24-first.md":    "---\ntitle: First Post\nlayout: post\n---\nBody.",
		"posts/drafts/.wip.md":         "hidden file, never listed",
		".obsidian/workspace.md":       "hidden directory, never walked",
		"notes.txt":                    "wrong extension, not selected",
		"posts/2015-02-02-snippets.md": "---\ntitle: Snippets\n---\n{% gist abc123 %}\n",
	})

	docs, err := source.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// Sorted by path: posts/* before welcome.
	assert.Equal(t, "posts/2015-01-24-first", docs[0].ID)
	assert.Equal(t, "posts/2015-02-02-snippets", docs[1].ID)
	assert.Equal(t, "welcome", docs[2].ID)

	// Directive tokens pass through the loader unchanged.
	assert.Contains(t, docs[1].Body, "{% gist abc123 %}")
}

func TestSource_List_FailsFastOnMalformed(t *testing.T) {
	source := setupContent(t, map[string]string{
		"good.md":   "---\ntitle: Fine\n---\nok",
		"broken.md": "---\ntitle: Broken",
	})

	_, err := source.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, frontmatter.ErrMalformed)
	assert.Contains(t, err.Error(), "broken", "error should name the offending document")
}

func TestSource_Check(t *testing.T) {
	source := setupContent(t, map[string]string{
		"good.md":    "---\ntitle: Fine\n---\nok",
		"broken.md":  "---\ntitle: Broken",
		"busted.md":  "---\nlayout: page",
		"also-ok.md": "no header at all is fine",
	})

	issues, err := source.Check(context.Background())
	require.NoError(t, err)
	require.Len(t, issues, 2)

	// Report is sorted by document ID.
	assert.Equal(t, "broken", issues[0].ID)
	assert.Equal(t, "busted", issues[1].ID)
	for _, issue := range issues {
		assert.ErrorIs(t, issue.Err, frontmatter.ErrMalformed)
	}
}

func TestSource_Pattern(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "posts"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "posts", "a.md"), []byte("A"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "index.md"), []byte("I"), 0644))

	source := NewSource(Config{Root: tmp, Pattern: "posts/**/*.md"})
	require.NoError(t, source.Initialize(context.Background()))

	docs, err := source.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "posts/a", docs[0].ID)
}

func TestSource_Initialize_MissingRoot(t *testing.T) {
	source := NewSource(Config{Root: filepath.Join(t.TempDir(), "nope")})
	err := source.Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestSource_Initialize_RootIsFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	source := NewSource(Config{Root: file})
	err := source.Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestParseDocument_ErrorNamesDocument(t *testing.T) {
	_, err := parseDocument("posts/broken", []byte("---\nnever closed"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, frontmatter.ErrMalformed))
	assert.Contains(t, err.Error(), "posts/broken")
}
