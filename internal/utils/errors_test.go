package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	t.Parallel()

	wrapped := errors.New("429 RESOURCE_EXHAUSTED")
	err := E(CodeInternal, "SummaryService.General", "failed to summarize", wrapped)

	assert.Equal(t, "SummaryService.General: failed to summarize: 429 RESOURCE_EXHAUSTED", err.Error())
	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeInvalidArgument))
	assert.True(t, errors.Is(err, wrapped))
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", E(CodeInvalidArgument, "op", "bad input", nil), http.StatusBadRequest},
		{"not found", E(CodeNotFound, "op", "missing", nil), http.StatusNotFound},
		{"unavailable", E(CodeUnavailable, "op", "down", nil), http.StatusServiceUnavailable},
		{"internal", E(CodeInternal, "op", "boom", nil), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestDetail(t *testing.T) {
	t.Parallel()

	vendor := errors.New("googleapi: Error 403: insufficient permissions")
	assert.Equal(t, vendor.Error(), Detail(E(CodeInternal, "op", "drive call failed", vendor)))
	assert.Empty(t, Detail(E(CodeInvalidArgument, "op", "no file", nil)))
	assert.Empty(t, Detail(errors.New("plain")))
}
