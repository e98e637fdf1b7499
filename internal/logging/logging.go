package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to stderr so it never mixes with the results
// printed on stdout.
func New(pretty bool, development bool, level zapcore.LevelEnabler) *zap.Logger {
	return NewZapLogger(zapcore.Lock(os.Stderr), pretty, development, level)
}

func zapBaseEncoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeDuration = zapcore.SecondsDurationEncoder
	ec.TimeKey = "time"
	return ec
}

func zapJSONEncoder() zapcore.Encoder {
	ec := zapBaseEncoderConfig()
	ec.EncodeTime = zapcore.EpochMillisTimeEncoder
	return zapcore.NewJSONEncoder(ec)
}

func zapConsoleEncoder() zapcore.Encoder {
	ec := zapBaseEncoderConfig()
	ec.ConsoleSeparator = " "
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func NewZapLogger(syncer zapcore.WriteSyncer, pretty, development bool, level zapcore.LevelEnabler) *zap.Logger {
	var encoder zapcore.Encoder
	if pretty {
		encoder = zapConsoleEncoder()
	} else {
		encoder = zapJSONEncoder()
	}

	var opts []zap.Option
	if development {
		opts = append(opts, zap.AddCaller(), zap.Development())
	}
	opts = append(opts, zap.AddStacktrace(zap.ErrorLevel))

	return zap.New(zapcore.NewCore(encoder, syncer, level), opts...)
}

// LevelFromString parses debug, info, warn/warning, error, fatal and panic,
// case-insensitively.
func LevelFromString(level string) (zapcore.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel, nil
	case "INFO":
		return zapcore.InfoLevel, nil
	case "WARN", "WARNING":
		return zapcore.WarnLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	case "FATAL":
		return zapcore.FatalLevel, nil
	case "PANIC":
		return zapcore.PanicLevel, nil
	default:
		return -1, fmt.Errorf("unknown log level: %s", level)
	}
}
