package rod_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/mock"
	"github.com/fwojciec/clipper/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingOpener(opened *atomic.Int32) *mock.PageOpener {
	return &mock.PageOpener{
		OpenFn: func(context.Context, string) (clipper.Page, error) {
			opened.Add(1)
			return &mock.Page{}, nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestLimitedOpener_Open(t *testing.T) {
	t.Parallel()

	t.Run("opens first page immediately", func(t *testing.T) {
		t.Parallel()

		var opened atomic.Int32
		opener := rod.NewLimitedOpener(countingOpener(&opened), 10)

		start := time.Now()
		_, err := opener.Open(context.Background(), "https://example.com/a")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first open should be immediate")
		assert.Equal(t, int32(1), opened.Load())
	})

	t.Run("spaces pages on the same host", func(t *testing.T) {
		t.Parallel()

		var opened atomic.Int32
		opener := rod.NewLimitedOpener(countingOpener(&opened), 10) // 100ms between opens

		_, err := opener.Open(context.Background(), "https://example.com/a")
		require.NoError(t, err)

		start := time.Now()
		_, err = opener.Open(context.Background(), "https://example.com/b")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		var opened atomic.Int32
		opener := rod.NewLimitedOpener(countingOpener(&opened), 10)

		_, err := opener.Open(context.Background(), "https://example.com/a")
		require.NoError(t, err)

		start := time.Now()
		_, err = opener.Open(context.Background(), "https://other.com/a")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different host should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		var opened atomic.Int32
		opener := rod.NewLimitedOpener(countingOpener(&opened), 1) // 1s between opens

		_, err := opener.Open(context.Background(), "https://example.com/a")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err = opener.Open(ctx, "https://example.com/b")
		assert.Error(t, err, "should fail when context times out")
		assert.Equal(t, int32(1), opened.Load())
	})

	t.Run("concurrent opens all complete", func(t *testing.T) {
		t.Parallel()

		var opened atomic.Int32
		opener := rod.NewLimitedOpener(countingOpener(&opened), 100)

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = opener.Open(context.Background(), "https://example.com/a")
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), opened.Load())
	})

	t.Run("rejects URLs without host", func(t *testing.T) {
		t.Parallel()

		var opened atomic.Int32
		opener := rod.NewLimitedOpener(countingOpener(&opened), 1)

		_, err := opener.Open(context.Background(), "not a url")

		assert.Equal(t, clipper.EINVALID, clipper.ErrorCode(err))
		assert.Zero(t, opened.Load())
	})

	t.Run("zero rate disables limiting", func(t *testing.T) {
		t.Parallel()

		var opened atomic.Int32
		opener := rod.NewLimitedOpener(countingOpener(&opened), 0)

		for range 3 {
			_, err := opener.Open(context.Background(), "not a url")
			require.NoError(t, err)
		}
		assert.Equal(t, int32(3), opened.Load())
	})
}
