package logging

import (
	"os"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

// DefaultTimeFormatStr is the timestamp layout used by non-zap appenders in this package.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// Appender is anything a Logger can hand entries to. A zapcore.Core satisfies this interface
// structurally, so observer cores from zap's test helpers can be registered directly.
type Appender interface {
	Write(entry zapcore.Entry, fields []zapcore.Field) error
	Sync() error
}

func callerToString(caller *zapcore.EntryCaller) string {
	if caller == nil || !caller.Defined {
		return ""
	}
	return caller.TrimmedPath()
}

// NewStdoutAppender returns an Appender that writes console-formatted entries to stdout with
// ISO8601 timestamps, gated by the package-wide GlobalLogLevel. Timestamps are printed in the
// entry's own time zone, which the emitting Logger decides.
func NewStdoutAppender() Appender {
	encoder := zapcore.NewConsoleEncoder(NewZapLoggerConfig().EncoderConfig)
	return zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), GlobalLogLevel)
}

// NewStdoutTestAppender is like NewStdoutAppender but formats timestamps with
// DefaultTimeFormatStr, which is more convenient when reading test output interactively.
func NewStdoutTestAppender() Appender {
	cfg := NewZapLoggerConfig().EncoderConfig
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(DefaultTimeFormatStr)
	encoder := zapcore.NewConsoleEncoder(cfg)
	return zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), GlobalLogLevel)
}

type testAppender struct {
	tb testing.TB
}

// NewTestAppender returns an Appender that routes entries through testing.TB.Log, so log lines
// are attributed to the test that emitted them and flushed even if the test fails.
func NewTestAppender(tb testing.TB) Appender {
	return &testAppender{tb}
}

// Write formats entry and fields as a tab-delimited line and forwards it to tb.Log.
func (tapp *testAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	tapp.tb.Helper()
	const maxParts = 10
	toPrint := make([]string, 0, maxParts)
	toPrint = append(toPrint, entry.Time.Local().Format(DefaultTimeFormatStr))
	toPrint = append(toPrint, strings.ToUpper(entry.Level.String()))
	toPrint = append(toPrint, entry.LoggerName)
	if entry.Caller.Defined {
		toPrint = append(toPrint, callerToString(&entry.Caller))
	}
	toPrint = append(toPrint, entry.Message)

	if len(fields) == 0 {
		tapp.tb.Log(strings.Join(toPrint, "\t"))
		return nil
	}

	jsonEncoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true})
	buf, err := jsonEncoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		tapp.tb.Log(strings.Join(toPrint, "\t"))
		return err
	}
	toPrint = append(toPrint, string(buf.Bytes()))
	tapp.tb.Log(strings.Join(toPrint, "\t"))
	return nil
}

// Sync is a no-op; testing.TB has no flush semantics to forward to.
func (tapp *testAppender) Sync() error {
	return nil
}
