package rod_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/mock"
	"github.com/fwojciec/clipper/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingOpener_Open(t *testing.T) {
	t.Parallel()

	t.Run("logs the opened URL and returns the page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		page := &mock.Page{}
		opener := rod.NewLoggingOpener(&mock.PageOpener{
			OpenFn: func(_ context.Context, url string) (clipper.Page, error) {
				assert.Equal(t, "https://example.com/a", url)
				return page, nil
			},
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		got, err := opener.Open(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Same(t, page, got)
		assert.Contains(t, buf.String(), "msg=open")
		assert.Contains(t, buf.String(), "url=https://example.com/a")
		assert.Contains(t, buf.String(), "duration=")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		opener := rod.NewLoggingOpener(&mock.PageOpener{
			OpenFn: func(context.Context, string) (clipper.Page, error) {
				return nil, errors.New("no tab")
			},
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := opener.Open(context.Background(), "https://example.com/a")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="no tab"`)
	})

	t.Run("delegates close", func(t *testing.T) {
		t.Parallel()

		closed := false
		opener := rod.NewLoggingOpener(&mock.PageOpener{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		require.NoError(t, opener.Close())
		assert.True(t, closed)
	})
}
