package clipper_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/clipper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := clipper.Errorf(clipper.ENOCONTENT, "no content found at %q", "https://example.com")

	assert.Equal(t, clipper.ENOCONTENT, clipper.ErrorCode(err))
	assert.Equal(t, "no content found at \"https://example.com\"", clipper.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clipper.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clipper.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extracting: %w", clipper.Errorf(clipper.ELOADTIMEOUT, "page did not load"))

	assert.Equal(t, clipper.ELOADTIMEOUT, clipper.ErrorCode(err))
	assert.Equal(t, "page did not load", clipper.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, clipper.EINTERNAL, clipper.ErrorCode(context.Canceled))
	assert.Equal(t, "Internal error.", clipper.ErrorMessage(context.Canceled))
}
