// internal/command/query.go
package command

import (
	"github.com/mitchellh/cli"

	"github.com/deploymenttheory/go-api-http-params/query"
)

// NewQuery returns the "query" subcommand.
func NewQuery(ui cli.Ui) *QueryCommand {
	c := &QueryCommand{baseCommand: baseCommand{UI: ui}}
	c.initFlags("query")
	return c
}

// QueryCommand prints the query parameters of a URL.
type QueryCommand struct {
	baseCommand
}

func (c *QueryCommand) Run(args []string) int {
	rest, err := c.parse(args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	input, err := c.readInput(rest)
	if err != nil {
		return c.fail("Error reading URL", err)
	}

	result := query.ParseWithOptions(input, c.queryOptions()...)

	out, err := formatMap(c.cfg.OutputFormat, result)
	if err != nil {
		return c.fail("Error formatting output", err)
	}
	c.UI.Output(out)
	return 0
}

func (c *QueryCommand) Synopsis() string {
	return "Print the query parameters of a URL"
}

func (c *QueryCommand) Help() string {
	return c.usage(`
Usage: paramparse query [options] [URL|-]

  Extracts the query component of URL (the text after '?' and before '#')
  and prints its parameters. Pairs without '=' are ignored, values are
  percent-decoded and a repeated name keeps its last value. With no URL,
  or "-", the URL is read from standard input.

      $ paramparse query 'https://example.com/news;s2?source=bbc&date=2023-05-18'
`)
}
