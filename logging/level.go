package logging

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// GlobalLogLevel gates every appender produced by NewStdoutAppender/NewStdoutTestAppender. It is
// separate from any one Logger's AtomicLevel so that, e.g., a verbose test run can turn on debug
// output for all loggers at once without touching each one's SetLevel.
var GlobalLogLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

// Level is the severity of a log entry, ordered from most to least verbose.
type Level int32

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// String returns the canonical lowercase name of the level, e.g. "debug".
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int32(l))
	}
}

// AsZap converts to the equivalent zapcore.Level.
func (l Level) AsZap() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LevelFromString parses a level name as produced by Level.String.
func LevelFromString(s string) (Level, error) {
	switch s {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}

// AtomicLevel is a Level that can be read and mutated concurrently. It is a small value type
// that shares an underlying int32 across copies, mirroring zap.AtomicLevel's ergonomics: a
// Logger can hand out its AtomicLevel by value and still have SetLevel calls observed everywhere.
type AtomicLevel struct {
	lvl *int32
}

// NewAtomicLevelAt constructs an AtomicLevel initialized to l.
func NewAtomicLevelAt(l Level) AtomicLevel {
	v := int32(l)
	return AtomicLevel{lvl: &v}
}

// Get returns the current level.
func (a AtomicLevel) Get() Level {
	return Level(atomic.LoadInt32(a.lvl))
}

// Set updates the current level.
func (a AtomicLevel) Set(l Level) {
	atomic.StoreInt32(a.lvl, int32(l))
}
