// internal/command/base.go
package command

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/cli"
	"go.uber.org/zap"

	"github.com/deploymenttheory/go-api-http-params/config"
	"github.com/deploymenttheory/go-api-http-params/logger"
	"github.com/deploymenttheory/go-api-http-params/query"
	"github.com/deploymenttheory/go-api-http-params/version"
)

// stdinArg reads input from standard input instead of the command line.
const stdinArg = "-"

// baseCommand holds the flags and runtime plumbing shared by every paramparse subcommand.
type baseCommand struct {
	UI        cli.Ui
	Stdin     io.Reader
	LogWriter io.Writer

	flags *flag.FlagSet

	flagConfig    string
	flagFormat    string
	flagLogLevel  string
	flagKeepBlank bool
	flagRedact    bool
	flagMaxParams int

	cfg *config.Config
	log logger.Logger
}

func (c *baseCommand) initFlags(name string) {
	c.flags = flag.NewFlagSet(name, flag.ContinueOnError)
	c.flags.SetOutput(io.Discard)
	c.flags.StringVar(&c.flagConfig, "config", "",
		"Path to a JSON configuration file. Environment variables override file values.")
	c.flags.StringVar(&c.flagFormat, "format", "",
		"Output format, json or text. Defaults to json.")
	c.flags.StringVar(&c.flagLogLevel, "log-level", "",
		"Log level, for example LogLevelDebug. Logs are written to stderr.")
	c.flags.BoolVar(&c.flagKeepBlank, "keep-blank", config.DefaultKeepBlankValues,
		"Keep query parameters with an empty value.")
	c.flags.BoolVar(&c.flagRedact, "redact", false,
		"Replace the values of sensitive cookies with REDACTED.")
	c.flags.IntVar(&c.flagMaxParams, "max-params", 0,
		"Stop after this many query parameters. 0 means unlimited.")
}

// parse parses args and resolves configuration and logging. It returns the positional arguments.
// Precedence is flags, then environment, then the configuration file. Validation runs once on the result.
func (c *baseCommand) parse(args []string) ([]string, error) {
	if err := c.flags.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config.Config{}
	if c.flagConfig != "" {
		fileCfg, err := config.LoadConfigFromFile(c.flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	cfg = config.LoadConfigFromEnv(cfg)

	c.flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.OutputFormat = c.flagFormat
		case "log-level":
			cfg.LogLevel = c.flagLogLevel
		case "keep-blank":
			keep := c.flagKeepBlank
			cfg.KeepBlankValues = &keep
		case "redact":
			cfg.HideSensitiveData = c.flagRedact
		case "max-params":
			cfg.MaxParams = c.flagMaxParams
		}
	})
	config.SetDefaultValues(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	c.cfg = cfg

	w := c.LogWriter
	if w == nil {
		w = os.Stderr
	}
	c.log = logger.BuildLoggerWithWriter(w, cfg.Level(), cfg.LogOutputFormat, cfg.LogConsoleSeparator).With(
		zap.String("run_id", uuid.NewString()),
		zap.String("application", version.GetHumanVersion()),
		zap.String("command", c.flags.Name()),
	)

	return c.flags.Args(), nil
}

// queryOptions returns the query parser options selected by configuration.
func (c *baseCommand) queryOptions() []query.Option {
	return []query.Option{
		query.WithKeepBlankValues(c.cfg.KeepBlank()),
		query.WithMaxParams(c.cfg.MaxParams),
		query.WithLogger(c.log),
	}
}

// readInput returns the single positional argument, or standard input when there is
// none or it is "-". One trailing newline is removed from standard input.
func (c *baseCommand) readInput(args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("too many arguments (expected 1, got %d)", len(args))
	}
	if len(args) == 1 && args[0] != stdinArg {
		return args[0], nil
	}

	b, err := io.ReadAll(c.stdin())
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	s := string(b)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// openInput returns a reader for the file named by the single positional argument,
// or standard input for "-" or no argument.
func (c *baseCommand) openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) > 1 {
		return nil, "", fmt.Errorf("too many arguments (expected 1, got %d)", len(args))
	}
	if len(args) == 0 || args[0] == stdinArg {
		return io.NopCloser(c.stdin()), stdinArg, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	return f, args[0], nil
}

func (c *baseCommand) stdin() io.Reader {
	if c.Stdin == nil {
		return os.Stdin
	}
	return c.Stdin
}

// helpFlags renders the flag defaults for Help output.
func (c *baseCommand) helpFlags() string {
	var buf bytes.Buffer
	c.flags.VisitAll(func(f *flag.Flag) {
		def := f.DefValue
		if def == "" {
			def = `""`
		}
		fmt.Fprintf(&buf, "  -%s (default: %s)\n      %s\n\n", f.Name, def, f.Usage)
	})
	return strings.TrimRight(buf.String(), "\n")
}

// usage joins a command's help text with its flags.
func (c *baseCommand) usage(text string) string {
	return strings.TrimSpace(text) + "\n\nOptions:\n\n" + c.helpFlags() + "\n"
}

// fail reports err on the UI and through the logger, returning the exit code.
func (c *baseCommand) fail(prefix string, err error) int {
	if c.log != nil {
		_ = c.log.Error(prefix, zap.Error(err))
	}
	c.UI.Error(fmt.Sprintf("%s: %s", prefix, err))
	return 1
}

// quote is used in text output so blank values stay visible.
func quote(s string) string {
	return strconv.Quote(s)
}
