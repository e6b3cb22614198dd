package clilog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radikant-go/strictjson/internal/clilog"
)

func TestNewHandlerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	h, err := clilog.NewHandler(&buf, "info", "text")
	require.NoError(t, err)

	slog.New(h).Info("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "{")
}

func TestNewHandlerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	h, err := clilog.NewHandler(&buf, "info", "json")
	require.NoError(t, err)

	slog.New(h).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNewHandlerDefaultsOnEmptyStrings(t *testing.T) {
	var buf bytes.Buffer
	_, err := clilog.NewHandler(&buf, "", "")
	require.NoError(t, err)
}

func TestNewHandlerRejectsUnknownLevel(t *testing.T) {
	_, err := clilog.NewHandler(&bytes.Buffer{}, "loud", "text")
	assert.True(t, errors.Is(err, clilog.ErrUnknownLevel))
}

func TestNewHandlerRejectsUnknownFormat(t *testing.T) {
	_, err := clilog.NewHandler(&bytes.Buffer{}, "info", "xml")
	assert.True(t, errors.Is(err, clilog.ErrUnknownFormat))
}

func TestNewHandlerRespectsLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	h, err := clilog.NewHandler(&buf, "error", "text")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("should be filtered out")
	logger.Error("should appear")

	assert.NotContains(t, buf.String(), "should be filtered out")
	assert.Contains(t, buf.String(), "should appear")
}
