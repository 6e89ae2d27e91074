package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestFormAttrs(t *testing.T) {
	t.Run("form", func(t *testing.T) {
		attr := logger.Form("signup")
		assert.Equal(t, "form", attr.Key)
		assert.Equal(t, "signup", attr.Value.String())
		assert.True(t, logger.Form("").Equal(slog.Attr{}))
	})

	t.Run("field", func(t *testing.T) {
		attr := logger.Field("email")
		assert.Equal(t, "field", attr.Key)
		assert.Equal(t, "email", attr.Value.String())
	})

	t.Run("valid", func(t *testing.T) {
		attr := logger.Valid(true)
		assert.Equal(t, "valid", attr.Key)
		assert.True(t, attr.Value.Bool())
	})

	t.Run("component", func(t *testing.T) {
		attr := logger.Component("formhttp")
		assert.Equal(t, "component", attr.Key)
		assert.Equal(t, "formhttp", attr.Value.String())
	})
}
