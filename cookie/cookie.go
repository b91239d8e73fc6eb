// cookie/cookie.go

/* Package cookie parses HTTP Cookie header strings ("name=value; other=value") into an
ordered parameter map, and provides helpers for moving those maps between net/http
headers and cookies. Cookie attributes (Path, Expires, Secure, ...) are not interpreted
and values are never percent-decoded. */

package cookie

import (
	"strings"

	"github.com/deploymenttheory/go-api-http-params/logger"
	"github.com/deploymenttheory/go-api-http-params/params"
)

const source = "cookie"

// Parse splits a ';' separated cookie string into name/value pairs.
// Only the first '=' of a token separates name from value. Tokens without '=' are
// skipped, one pair of surrounding double quotes is removed from values, and later
// duplicate names overwrite earlier ones.
func Parse(input string) *params.Map {
	return ParseWithLogger(input, nil)
}

// ParseWithLogger is Parse with skipped tokens traced at debug level.
func ParseWithLogger(input string, log logger.Logger) *params.Map {
	if log == nil {
		log = logger.NewNop()
	}
	result := params.New()
	parseInto(result, input, log)
	logger.LogParseComplete(log, source, result.Len())
	return result
}

func parseInto(result *params.Map, input string, log logger.Logger) {
	if input == "" {
		return
	}
	for _, token := range strings.Split(input, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		name, value, found := strings.Cut(token, "=")
		if !found {
			logger.LogDiscardedToken(log, source, token, "missing_separator")
			continue
		}
		result.Set(name, unquote(value))
	}
}

// unquote removes exactly one pair of surrounding double quotes.
func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}
