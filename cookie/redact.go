// cookie/redact.go
package cookie

import (
	"strings"

	"github.com/deploymenttheory/go-api-http-params/params"
)

// RedactedValue replaces the value of a sensitive cookie.
const RedactedValue = "REDACTED"

// DefaultSensitiveNames are redacted when Redact is called without names.
var DefaultSensitiveNames = []string{"SessionID", "session", "token", "JSESSIONID"}

// Redact returns a copy of m with the values of sensitive cookies replaced by RedactedValue.
// Names are matched case-insensitively. With no names, DefaultSensitiveNames is used.
func Redact(m *params.Map, names ...string) *params.Map {
	if len(names) == 0 {
		names = DefaultSensitiveNames
	}
	sensitive := make(map[string]bool, len(names))
	for _, n := range names {
		sensitive[strings.ToLower(n)] = true
	}

	redacted := params.New()
	m.Range(func(name, value string) bool {
		if sensitive[strings.ToLower(name)] {
			value = RedactedValue
		}
		redacted.Set(name, value)
		return true
	})
	return redacted
}
