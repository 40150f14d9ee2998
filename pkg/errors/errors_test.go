package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndWrap(t *testing.T) {
	base := fmt.Errorf("boom")
	wrapped := Wrap(CodeDependency, base, "calling upstream")

	assert.Equal(t, CodeDependency, wrapped.Code())
	assert.Equal(t, "calling upstream", wrapped.Message())
	assert.ErrorIs(t, wrapped, base)
}

func TestAs_FindsTypedErrorInChain(t *testing.T) {
	typed := New(CodeEmptyCart, "cannot submit an empty cart")
	chained := fmt.Errorf("checkout: %w", typed)

	found := As(chained)
	require.NotNil(t, found)
	assert.Equal(t, CodeEmptyCart, found.Code())

	assert.Nil(t, As(fmt.Errorf("plain")))
	assert.Nil(t, As(nil))
}

func TestMetadataFor(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		retryable bool
	}{
		{CodeValidation, http.StatusBadRequest, false},
		{CodeEmptyCart, http.StatusBadRequest, false},
		{CodeBelowMinimumOrder, http.StatusUnprocessableEntity, false},
		{CodeMissingScheduledTime, http.StatusBadRequest, false},
		{CodeUnknownPromoCode, http.StatusNotFound, false},
		{CodePromoNotEligible, http.StatusUnprocessableEntity, false},
		{CodeInvalidProductReference, http.StatusUnprocessableEntity, false},
		{CodeSubmissionTimeout, http.StatusGatewayTimeout, true},
		{CodeSubmissionTransport, http.StatusBadGateway, true},
	}

	for _, tc := range tests {
		meta := MetadataFor(tc.code)
		assert.Equal(t, tc.status, meta.HTTPStatus, string(tc.code))
		assert.Equal(t, tc.retryable, meta.Retryable, string(tc.code))
	}
}

func TestMetadataFor_UnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NO_SUCH_CODE"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestWithDetails(t *testing.T) {
	err := New(CodeBelowMinimumOrder, "too small").
		WithDetails(map[string]any{"minimum": 100})

	details, ok := err.Details().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 100, details["minimum"])
}

func TestDump_CollectsChain(t *testing.T) {
	base := fmt.Errorf("socket closed")
	err := Wrap(CodeSubmissionTransport, base, "deliver host command")

	dump := Dump(err)
	assert.Equal(t, CodeSubmissionTransport, dump.Code)
	assert.Len(t, dump.Chain, 2)
	assert.Contains(t, dump.TopMessage, "deliver host command")
}
