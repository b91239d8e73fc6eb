// internal/command/output.go
package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-api-http-params/extract"
	"github.com/deploymenttheory/go-api-http-params/params"
)

// formatMap renders a single parameter map.
// json: an object in insertion order. text: one key=value line per entry, values quoted.
func formatMap(format string, m *params.Map) (string, error) {
	switch format {
	case "text":
		var lines []string
		m.Range(func(k, v string) bool {
			lines = append(lines, fmt.Sprintf("%s=%s", k, quote(v)))
			return true
		})
		return strings.Join(lines, "\n"), nil
	case "json":
		b, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode parameters: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

// formatResults renders the per-link output of the html and sitemap commands.
func formatResults(format string, results []extract.Result) (string, error) {
	switch format {
	case "text":
		var blocks []string
		for _, r := range results {
			body, err := formatMap(format, r.Params)
			if err != nil {
				return "", fmt.Errorf("failed to format %s: %w", r.URL, err)
			}
			blocks = append(blocks, r.URL+"\n  "+strings.ReplaceAll(body, "\n", "\n  "))
		}
		return strings.Join(blocks, "\n"), nil
	case "json":
		if results == nil {
			results = []extract.Result{}
		}
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode results: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}
