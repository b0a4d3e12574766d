package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

// above zap's highest level, nothing gets through
const zapNone = zapcore.FatalLevel + 1

var (
	level  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger *zap.SugaredLogger
)

func init() {
	SetOutput(os.Stderr)
	SetLevel(LevelWarning)
}

// SetOutput redirects all log output to the given writer.
func SetOutput(w io.Writer) {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	logger = zap.New(core).Sugar()
}

func SetLevel(l Level) {
	switch l {
	case LevelDebug:
		level.SetLevel(zapcore.DebugLevel)
	case LevelInfo:
		level.SetLevel(zapcore.InfoLevel)
	case LevelWarning:
		level.SetLevel(zapcore.WarnLevel)
	case LevelError:
		level.SetLevel(zapcore.ErrorLevel)
	case LevelNone:
		level.SetLevel(zapNone)
	}
}

// ParseLevel returns the level with the given name
// (debug, info, warning, error; case-insensitive).
// Unknown names mean LevelNone.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelNone
	}
}

// Logger gives access to the underlying structured logger.
func Logger() *zap.SugaredLogger {
	return logger
}

// Sync flushes buffered log entries.
func Sync() error {
	return logger.Sync()
}

func Debug(msg string, v ...interface{}) {
	logger.Debugf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	logger.Infof(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	logger.Warnf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	logger.Errorf(msg, v...)
}
