package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResult(url, title string) *clipper.ExtractionResult {
	r := &clipper.ExtractionResult{
		TextContent: "Body of " + title,
		WordCount:   3,
		Method:      clipper.MethodStructured,
	}
	r.URL = url
	r.Title = title
	return r
}

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "root", url: "https://example.com", want: filepath.Join("example.com", "index.json")},
		{name: "root slash", url: "https://example.com/", want: filepath.Join("example.com", "index.json")},
		{name: "simple path", url: "https://example.com/post", want: filepath.Join("example.com", "post.json")},
		{name: "nested path", url: "https://example.com/blog/2026/post", want: filepath.Join("example.com", "blog", "2026", "post.json")},
		{name: "trailing slash", url: "https://example.com/blog/", want: filepath.Join("example.com", "blog", "index.json")},
		{name: "query ignored", url: "https://example.com/post?page=2", want: filepath.Join("example.com", "post.json")},
		{name: "host lowercased", url: "https://Example.COM/post", want: filepath.Join("example.com", "post.json")},
		{name: "port kept", url: "http://localhost:8080/post", want: filepath.Join("localhost_8080", "post.json")},
		{name: "file URL", url: "file:///tmp/page.html", want: filepath.Join("tmp", "page.html.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url, ".json")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")

	err := store.Save(context.Background(), newResult("https://example.com/blog/post", "Post"))
	require.NoError(t, err)

	tempPath := filepath.Join(base, "output.tmp", "example.com", "blog", "post.json")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	finalPath := filepath.Join(base, "output", "example.com", "blog", "post.json")
	_, err = os.Stat(finalPath)
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), newResult("https://example.com/a", "A")))

	require.NoError(t, store.Commit())

	content, err := os.ReadFile(filepath.Join(base, "output", "example.com", "a.json"))
	require.NoError(t, err)

	var got clipper.ExtractionResult
	require.NoError(t, json.Unmarshal(content, &got))
	assert.Equal(t, "https://example.com/a", got.URL)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, clipper.MethodStructured, got.Method)

	_, err = os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_CommitReplacesPreviousOutput(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	first := fs.NewFileStore(base, "output")
	require.NoError(t, first.Save(context.Background(), newResult("https://example.com/old", "Old")))
	require.NoError(t, first.Commit())

	second := fs.NewFileStore(base, "output")
	require.NoError(t, second.Save(context.Background(), newResult("https://example.com/new", "New")))
	require.NoError(t, second.Commit())

	_, err := os.Stat(filepath.Join(base, "output", "example.com", "new.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "output", "example.com", "old.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_KeepsResultsFromDifferentHostsApart(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), newResult("https://a.com/", "A")))
	require.NoError(t, store.Save(context.Background(), newResult("https://b.com/", "B")))
	require.NoError(t, store.Commit())

	for host, title := range map[string]string{"a.com": "A", "b.com": "B"} {
		content, err := os.ReadFile(filepath.Join(base, "output", host, "index.json"))
		require.NoError(t, err, host)

		var got clipper.ExtractionResult
		require.NoError(t, json.Unmarshal(content, &got))
		assert.Equal(t, title, got.Title)
	}
}

func TestFileStore_CommitRefusesForeignDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	existing := filepath.Join(base, "docs", "thesis.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0755))
	require.NoError(t, os.WriteFile(existing, []byte("draft"), 0644))

	store := fs.NewFileStore(base, "docs")
	require.NoError(t, store.Save(context.Background(), newResult("https://example.com/a", "A")))

	err := store.Commit()

	assert.Equal(t, clipper.ECONFLICT, clipper.ErrorCode(err))
	content, err := os.ReadFile(existing)
	require.NoError(t, err, "pre-existing file should survive")
	assert.Equal(t, "draft", string(content))
	_, err = os.Stat(filepath.Join(base, "docs", "example.com", "a.json"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Abort())
}

func TestFileStore_CommitIntoEmptyDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "output"), 0755))

	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), newResult("https://example.com/a", "A")))
	require.NoError(t, store.Commit())

	_, err := os.Stat(filepath.Join(base, "output", "example.com", "a.json"))
	require.NoError(t, err)
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	require.NoError(t, store.Save(context.Background(), newResult("https://example.com/a", "A")))

	require.NoError(t, store.Abort())

	_, err := os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")
	_, err = os.Stat(filepath.Join(base, "output"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestFileStore_WithRenderer(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output", fs.WithRenderer(".txt", func(r *clipper.ExtractionResult) ([]byte, error) {
		return []byte(r.TextContent), nil
	}))
	require.NoError(t, store.Save(context.Background(), newResult("https://example.com/a", "A")))
	require.NoError(t, store.Commit())

	content, err := os.ReadFile(filepath.Join(base, "output", "example.com", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Body of A", string(content))
}

func TestFileStore_RejectsInvalidResults(t *testing.T) {
	t.Parallel()

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		store := fs.NewFileStore(t.TempDir(), "output")
		err := store.Save(context.Background(), newResult("", "A"))
		assert.Equal(t, clipper.EINVALID, clipper.ErrorCode(err))
	})

	t.Run("path traversal", func(t *testing.T) {
		t.Parallel()

		store := fs.NewFileStore(t.TempDir(), "output")
		err := store.Save(context.Background(), newResult("https://example.com/../../../etc/passwd", "Bad"))
		require.Error(t, err)
		assert.Contains(t, clipper.ErrorMessage(err), "path traversal")
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		store := fs.NewFileStore(t.TempDir(), "output")
		err := store.Save(ctx, newResult("https://example.com/a", "A"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
