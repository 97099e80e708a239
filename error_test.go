package tldr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/tldr"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := tldr.Errorf(tldr.EINVALID, "url %q is not valid", "nope")

	assert.Equal(t, tldr.EINVALID, tldr.ErrorCode(err))
	assert.Equal(t, "url \"nope\" is not valid", tldr.ErrorMessage(err))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := tldr.WrapError(tldr.ESUMMARY, cause, "summary request failed")

	assert.Equal(t, tldr.ESUMMARY, tldr.ErrorCode(err))
	assert.Equal(t, "summary request failed: connection refused", tldr.ErrorMessage(err))
	assert.ErrorIs(t, err, cause)
}

func TestErrorCode_WrappedApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("tier: %w", tldr.Errorf(tldr.ETRANSCRIPTSDISABLED, "disabled"))

	assert.Equal(t, tldr.ETRANSCRIPTSDISABLED, tldr.ErrorCode(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, tldr.EINTERNAL, tldr.ErrorCode(err))
	assert.Equal(t, "Internal error.", tldr.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tldr.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tldr.ErrorMessage(nil))
}
