package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payinput/pkg/logger"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestFieldID(t *testing.T) {
	attr := logger.FieldID("abc")
	assert.Equal(t, "field_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())

	assert.True(t, logger.FieldID(nil).Equal(slog.Attr{}))
}

func TestClassification(t *testing.T) {
	attr := logger.Classification(stringer("UK"))
	assert.Equal(t, "classification", attr.Key)
	assert.Equal(t, "UK", attr.Value.String())

	assert.True(t, logger.Classification(nil).Equal(slog.Attr{}))
}

func TestScalarAttrs(t *testing.T) {
	assert.True(t, logger.Component("inputfield").Equal(slog.String("component", "inputfield")))
	assert.True(t, logger.Length(4).Equal(slog.Int("length", 4)))
	assert.True(t, logger.Valid(true).Equal(slog.Bool("valid", true)))
	assert.True(t, logger.Accepted(false).Equal(slog.Bool("accepted", false)))
}
