// logger/zaplogger_config.go
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildLogger creates and returns a new zap backed Logger writing to stderr so that
// parser output on stdout stays machine readable.
// encoding is either "json" or "console"; logConsoleSeparator only applies to console encoding.
func BuildLogger(logLevel LogLevel, encoding string, logConsoleSeparator string) Logger {
	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(convertToZapLevel(logLevel)),
		Development:       false,
		Encoding:          normaliseEncoding(encoding),
		DisableCaller:     true,
		DisableStacktrace: true,
		Sampling:          nil,
		EncoderConfig:     encoderConfig(encoding, logConsoleSeparator),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	return &defaultLogger{
		logger:   zap.Must(config.Build()),
		logLevel: logLevel,
	}
}

// BuildLoggerWithWriter is BuildLogger with an explicit destination. Used by the CLI tests.
func BuildLoggerWithWriter(w io.Writer, logLevel LogLevel, encoding string, logConsoleSeparator string) Logger {
	cfg := encoderConfig(encoding, logConsoleSeparator)

	var enc zapcore.Encoder
	if normaliseEncoding(encoding) == "console" {
		enc = zapcore.NewConsoleEncoder(cfg)
	} else {
		enc = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(convertToZapLevel(logLevel)))
	return &defaultLogger{
		logger:   zap.New(core),
		logLevel: logLevel,
	}
}

func encoderConfig(encoding, logConsoleSeparator string) zapcore.EncoderConfig {
	encoderCfg := zap.NewProductionEncoderConfig()

	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.MessageKey = "msg"
	encoderCfg.LevelKey = "level"
	encoderCfg.NameKey = "logger"
	encoderCfg.CallerKey = "caller"
	encoderCfg.StacktraceKey = "stacktrace"
	encoderCfg.LineEnding = zapcore.DefaultLineEnding
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder
	encoderCfg.EncodeName = zapcore.FullNameEncoder

	if normaliseEncoding(encoding) == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if logConsoleSeparator != "" {
			encoderCfg.ConsoleSeparator = logConsoleSeparator
		}
	}
	return encoderCfg
}

func normaliseEncoding(encoding string) string {
	if encoding == "console" {
		return "console"
	}
	return "json"
}

// convertToZapLevel converts the custom LogLevel to a zapcore.Level
func convertToZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zap.DebugLevel
	case LogLevelInfo:
		return zap.InfoLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelDPanic:
		return zap.DPanicLevel
	case LogLevelPanic:
		return zap.PanicLevel
	case LogLevelFatal, LogLevelNone:
		return zap.FatalLevel
	default:
		return zap.InfoLevel // Default to InfoLevel
	}
}
