package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/colstore/internal/config"
)

func TestSetupLoggerConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := SetupLogger(config.Logging{Level: "warn"}, &buf)
	assert.NilError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "table", "db1.grades")

	out := buf.String()
	assert.Assert(t, !bytes.Contains(buf.Bytes(), []byte("hidden")))
	assert.Assert(t, is.Contains(out, "msg=shown"))
	assert.Assert(t, is.Contains(out, "table=db1.grades"))
}

func TestSetupLoggerRejectsBadLevel(t *testing.T) {
	_, _, err := SetupLogger(config.Logging{Level: "chatty"}, nil)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	WithTable(WithComponent(base, "catalog"), "db1.grades").Info("created")

	out := buf.String()
	assert.Assert(t, is.Contains(out, "component=catalog"))
	assert.Assert(t, is.Contains(out, "table=db1.grades"))
}

type recordingHandler struct {
	level   slog.Level
	records []slog.Record
}

func (h *recordingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }
func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}
func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestMultiHandlerRespectsEachLevel(t *testing.T) {
	debug := &recordingHandler{level: slog.LevelDebug}
	errOnly := &recordingHandler{level: slog.LevelError}
	logger := slog.New(&multiHandler{handlers: []slog.Handler{debug, errOnly}})

	logger.Debug("d")
	logger.Error("e")

	assert.Equal(t, len(debug.records), 2)
	assert.Equal(t, len(errOnly.records), 1)
	assert.Equal(t, errOnly.records[0].Message, "e")
}
