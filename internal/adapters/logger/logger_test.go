package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rauri/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Debug("hidden")
	l.Info("hello")
	l.Warn("careful")

	assert.Equal(t, "hello\n! careful\n", buf.String())
}

func TestLogger_SetVerbose(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetVerbose(true)

	l.Debug("visible")
	assert.Equal(t, "○ visible\n", buf.String())

	buf.Reset()
	l.SetVerbose(false)
	l.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetJSON(true)

	l.Info("json message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "json message", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestLogger_Error(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	err := zerr.Wrap(errors.New("exit status 1"), "failed to build package")
	err = zerr.With(err, "package", "foo")
	l.Error(err)

	want := "✗ Error: failed to build package\n" +
		"       package: foo\n\n" +
		"  Caused by:\n" +
		"    → exit status 1\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}
