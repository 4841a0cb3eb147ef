package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/clipper"
	main "github.com/fwojciec/clipper/cmd/clipper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var articleHTML = `<html lang="en"><head><title>Field Notes</title>
<meta name="author" content="Jane Doe"></head>
<body><nav>Home | About</nav>
<div class="content"><p>` + strings.Repeat("Lorem ipsum dolor sit amet. ", 30) + `</p></div>
<footer><img src="/hero.png" alt="Hero"><a href="/next">Next post</a></footer>
</body></html>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows help without arguments", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), nil, strings.NewReader(""), stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "extract")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--help"}, strings.NewReader(""), stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "enhance")
	})

	t.Run("extracts file as JSON and records it", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "clipper.db")
		input := writeFile(t, "page.html", articleHTML)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{
			"--db", dbPath, "extract", input, "--url", "https://example.com/notes", "--format", "json",
		}, strings.NewReader(""), stdout, stderr)
		require.NoError(t, err, stderr.String())

		var r clipper.ExtractionResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &r))
		assert.Equal(t, "Field Notes", r.Title)
		assert.Equal(t, "https://example.com/notes", r.URL)
		assert.Equal(t, clipper.MethodStructured, r.Method)
		assert.Equal(t, 150, r.WordCount)
		assert.NotContains(t, r.TextContent, "Home | About")
		require.Len(t, r.Images, 1)
		assert.Equal(t, "https://example.com/hero.png", r.Images[0].Src)

		stdout.Reset()
		err = main.NewMain().Run(context.Background(), []string{"--db", dbPath, "log"}, strings.NewReader(""), stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://example.com/notes")
		assert.Contains(t, stdout.String(), "Field Notes")
		assert.Contains(t, stdout.String(), "structured")
	})

	t.Run("reads stdin", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{
			"--db", ":memory:", "extract", "--url", "https://example.com/notes",
		}, strings.NewReader(articleHTML), stdout, stderr)

		require.NoError(t, err, stderr.String())
		assert.Contains(t, stdout.String(), "# Field Notes")
		assert.Contains(t, stdout.String(), "Reading time: 1 min (150 words)")
	})

	t.Run("selects engine from flag", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{
			"--db", ":memory:", "extract", "--url", "https://example.com/notes", "--engine", "readability", "--format", "json",
		}, strings.NewReader(articleHTML), stdout, stderr)

		require.NoError(t, err, stderr.String())
		var r clipper.ExtractionResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &r))
		assert.Contains(t, r.TextContent, "Lorem ipsum")
	})

	t.Run("rejects unknown engine", func(t *testing.T) {
		t.Parallel()

		err := main.NewMain().Run(context.Background(), []string{
			"--db", ":memory:", "extract", "--engine", "magic",
		}, strings.NewReader(articleHTML), &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown engine")
	})

	t.Run("applies config file", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "from-config.db")
		cfgPath := writeFile(t, "clipper.yaml", "log:\n  db: "+dbPath+"\nextraction:\n  charThreshold: 5000\n")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{
			"--config", cfgPath, "extract", "--url", "https://example.com/notes", "--format", "json",
		}, strings.NewReader(articleHTML), stdout, stderr)
		require.NoError(t, err, stderr.String())

		var r clipper.ExtractionResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &r))
		assert.NotEqual(t, clipper.MethodStructured, r.Method)

		_, err = os.Stat(dbPath)
		assert.NoError(t, err)
	})

	t.Run("enhance requires API key", func(t *testing.T) {
		if os.Getenv("GEMINI_API_KEY") != "" {
			t.Skip("GEMINI_API_KEY is set")
		}
		t.Parallel()

		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{
			"--db", ":memory:", "enhance",
		}, strings.NewReader(articleHTML), &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})
}
