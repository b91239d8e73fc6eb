// logger/zaplogger_logfields.go
package logger

import (
	"go.uber.org/zap"
)

// LogDiscardedToken logs a token a parser dropped while building a parameter map.
// source is the parser name ("query", "cookie"), reason a short machine friendly tag.
func LogDiscardedToken(log Logger, source string, token string, reason string) {
	if log == nil || log.GetLogLevel() > LogLevelDebug {
		return
	}
	log.Debug("Token discarded",
		zap.String("event", "token_discarded"),
		zap.String("source", source),
		zap.String("token", token),
		zap.String("reason", reason),
	)
}

// LogParseComplete logs the result size of a single parse call.
func LogParseComplete(log Logger, source string, params int) {
	if log == nil {
		return
	}
	log.Debug("Parse completed",
		zap.String("event", "parse_complete"),
		zap.String("source", source),
		zap.Int("params", params),
	)
}

// LogInputError logs a failure to read or decode CLI input.
func LogInputError(log Logger, source string, input string, err error) error {
	return log.Error("Failed to read input",
		zap.String("event", "input_error"),
		zap.String("source", source),
		zap.String("input", input),
		zap.Error(err),
	)
}
