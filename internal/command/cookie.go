// internal/command/cookie.go
package command

import (
	"github.com/mitchellh/cli"

	"github.com/deploymenttheory/go-api-http-params/cookie"
)

// NewCookie returns the "cookie" subcommand.
func NewCookie(ui cli.Ui) *CookieCommand {
	c := &CookieCommand{baseCommand: baseCommand{UI: ui}}
	c.initFlags("cookie")
	return c
}

// CookieCommand prints the name/value pairs of a Cookie header string.
type CookieCommand struct {
	baseCommand
}

func (c *CookieCommand) Run(args []string) int {
	rest, err := c.parse(args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	input, err := c.readInput(rest)
	if err != nil {
		return c.fail("Error reading cookie string", err)
	}

	result := cookie.ParseWithLogger(input, c.log)
	if c.cfg.HideSensitiveData {
		result = cookie.Redact(result)
	}

	out, err := formatMap(c.cfg.OutputFormat, result)
	if err != nil {
		return c.fail("Error formatting output", err)
	}
	c.UI.Output(out)
	return 0
}

func (c *CookieCommand) Synopsis() string {
	return "Print the cookies in a Cookie header string"
}

func (c *CookieCommand) Help() string {
	return c.usage(`
Usage: paramparse cookie [options] [COOKIES|-]

  Splits a ';' separated cookie string into name/value pairs. Only the first
  '=' of a token separates name from value, one pair of surrounding double
  quotes is removed and tokens without '=' are ignored. With no argument,
  or "-", the string is read from standard input.

      $ paramparse cookie 'name=Dima=User; age=28; prefs=""'
`)
}
