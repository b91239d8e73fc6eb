// internal/command/command_test.go
package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{"LOG_LEVEL", "LOG_OUTPUT_FORMAT", "LOG_CONSOLE_SEPARATOR", "OUTPUT_FORMAT", "KEEP_BLANK_VALUES", "HIDE_SENSITIVE_DATA", "MAX_PARAMS"}

// clearEnv removes configuration variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func run(t *testing.T, name string, stdin string, args ...string) (int, *cli.MockUi, *bytes.Buffer) {
	t.Helper()
	ui := cli.NewMockUi()
	logs := &bytes.Buffer{}

	factory, ok := Commands(ui, strings.NewReader(stdin), logs)[name]
	require.True(t, ok, "unknown command %s", name)
	cmd, err := factory()
	require.NoError(t, err)

	code := cmd.Run(args)
	return code, ui, logs
}

func decodeObject(t *testing.T, s string) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	return out
}

func TestCommands_HelpHasNoTabs(t *testing.T) {
	for name, factory := range Commands(cli.NewMockUi(), nil, nil) {
		t.Run(name, func(t *testing.T) {
			cmd, err := factory()
			require.NoError(t, err)
			assert.NotContains(t, cmd.Help(), "\t")
			assert.NotEmpty(t, cmd.Synopsis())
		})
	}
}

func TestQueryCommand(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "query", "", "https://example.com/news;section2?source=bbc&category=sports&date=2023-05-18")

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, map[string]string{"source": "bbc", "category": "sports", "date": "2023-05-18"},
		decodeObject(t, ui.OutputWriter.String()))
}

func TestQueryCommand_Stdin(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "query", "http://example.com/?name=Dima\n")
	require.Equal(t, 0, code)
	assert.Equal(t, map[string]string{"name": "Dima"}, decodeObject(t, ui.OutputWriter.String()))

	code, ui, _ = run(t, "query", "http://example.com/?a=1\r\n", "-")
	require.Equal(t, 0, code)
	assert.Equal(t, map[string]string{"a": "1"}, decodeObject(t, ui.OutputWriter.String()))
}

func TestQueryCommand_TextFormatAndFlags(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "query", "", "-format", "text", "-keep-blank=false", "https://example.com/?b=2&a=&c=x+y")

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "b=\"2\"\nc=\"x y\"\n", ui.OutputWriter.String())
}

func TestQueryCommand_MaxParams(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "query", "", "-format", "text", "-max-params", "1", "/p?a=1&b=2")
	require.Equal(t, 0, code)
	assert.Equal(t, "a=\"1\"\n", ui.OutputWriter.String())
}

func TestQueryCommand_EmptyResult(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "query", "", "http://example.com/?")
	require.Equal(t, 0, code)
	assert.Equal(t, "{}\n", ui.OutputWriter.String())
}

func TestQueryCommand_Validation(t *testing.T) {
	clearEnv(t)

	cases := map[string]struct {
		args   []string
		output string
	}{
		"too many args": {[]string{"a", "b"}, "too many arguments"},
		"bad format":    {[]string{"-format", "yaml", "x"}, `unknown output format "yaml"`},
		"bad flag":      {[]string{"-nope"}, "flag provided but not defined"},
		"missing config": {[]string{"-config", filepath.Join(t.TempDir(), "missing.json"), "x"},
			"failed to clean/validate filepath"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			code, ui, _ := run(t, "query", "", tc.args...)
			require.Equal(t, 1, code)
			assert.Contains(t, ui.ErrorWriter.String(), tc.output)
		})
	}
}

func TestQueryCommand_ConfigFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "paramparse.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output_format":"text","keep_blank_values":false}`), 0o600))

	code, ui, _ := run(t, "query", "", "-config", path, "/p?a=&b=1")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "b=\"1\"\n", ui.OutputWriter.String())

	t.Setenv("OUTPUT_FORMAT", "json")
	code, ui, _ = run(t, "query", "", "-config", path, "/p?a=&b=1")
	require.Equal(t, 0, code)
	assert.Equal(t, map[string]string{"b": "1"}, decodeObject(t, ui.OutputWriter.String()))
}

func TestQueryCommand_FlagsOverrideInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OUTPUT_FORMAT", "yaml")
	t.Setenv("LOG_LEVEL", "verbose")

	code, ui, _ := run(t, "query", "", "-format", "text", "-log-level", "LogLevelWarn", "/p?a=1")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "a=\"1\"\n", ui.OutputWriter.String())

	code, ui, _ = run(t, "query", "", "-log-level", "LogLevelWarn", "/p?a=1")
	require.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), `unknown output format "yaml"`)
}

func TestQueryCommand_DebugLogsCarryRunID(t *testing.T) {
	clearEnv(t)

	code, _, logs := run(t, "query", "", "-log-level", "LogLevelDebug", "/p?flag&a=1")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Token discarded", entry["msg"])
	assert.Equal(t, "query", entry["command"])
	assert.Len(t, entry["run_id"], 36)
}

func TestCookieCommand(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "cookie", "", `name=Dima=User;age=28;preferences="";`)

	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, map[string]string{"name": "Dima=User", "age": "28", "preferences": ""},
		decodeObject(t, ui.OutputWriter.String()))
}

func TestCookieCommand_OrderedJSON(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "cookie", "", "b=2; a=1")
	require.Equal(t, 0, code)
	assert.Equal(t, "{\n  \"b\": \"2\",\n  \"a\": \"1\"\n}\n", ui.OutputWriter.String())
}

func TestCookieCommand_Redact(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "cookie", "SessionID=secret; theme=dark", "-redact")
	require.Equal(t, 0, code)
	assert.Equal(t, map[string]string{"SessionID": "REDACTED", "theme": "dark"}, decodeObject(t, ui.OutputWriter.String()))

	t.Setenv("HIDE_SENSITIVE_DATA", "true")
	code, ui, _ = run(t, "cookie", "", "SessionID=secret")
	require.Equal(t, 0, code)
	assert.Equal(t, map[string]string{"SessionID": "REDACTED"}, decodeObject(t, ui.OutputWriter.String()))
}

func TestCookieCommand_EmptyInput(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "cookie", "")
	require.Equal(t, 0, code)
	assert.Equal(t, "{}\n", ui.OutputWriter.String())
}

const testPage = `<html><body>
<a href="https://example.com/search?q=go&amp;page=2">search</a>
<a href="/about">about</a>
</body></html>`

const testSitemap = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/page?lang=en</loc></url>
  <url><loc>https://example.com/plain</loc></url>
</urlset>`

func TestHTMLCommand_Stdin(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "html", testPage)
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var results []struct {
		URL    string            `json:"url"`
		Params map[string]string `json:"params"`
	}
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "https://example.com/search?q=go&page=2", results[0].URL)
	assert.Equal(t, map[string]string{"q": "go", "page": "2"}, results[0].Params)
}

func TestSitemapCommand_FileText(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sitemap.xml")
	require.NoError(t, os.WriteFile(path, []byte(testSitemap), 0o600))

	code, ui, _ := run(t, "sitemap", "", "-format", "text", path)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "https://example.com/page?lang=en\n  lang=\"en\"\n", ui.OutputWriter.String())
}

func TestSitemapCommand_NoResults(t *testing.T) {
	clearEnv(t)

	code, ui, _ := run(t, "sitemap", `<urlset><url><loc>https://example.com/</loc></url></urlset>`)
	require.Equal(t, 0, code)
	assert.Equal(t, "[]\n", ui.OutputWriter.String())
}

func TestLinksCommand_MissingFile(t *testing.T) {
	clearEnv(t)

	code, ui, logs := run(t, "html", "", "-log-level", "LogLevelError", filepath.Join(t.TempDir(), "absent.html"))
	require.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "failed to open")
	assert.Contains(t, logs.String(), "Failed to read input")
}
