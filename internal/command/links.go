// internal/command/links.go
package command

import (
	"io"

	"github.com/mitchellh/cli"
	"go.uber.org/zap"

	"github.com/deploymenttheory/go-api-http-params/extract"
	"github.com/deploymenttheory/go-api-http-params/logger"
)

// NewHTML returns the "html" subcommand.
func NewHTML(ui cli.Ui) *LinksCommand {
	c := &LinksCommand{
		baseCommand: baseCommand{UI: ui},
		load:        extract.LinksFromHTML,
		synopsis:    "Print the query parameters of every link in an HTML document",
		help: `
Usage: paramparse html [options] [FILE|-]

  Collects every href, src and action attribute of the HTML document in FILE
  (or standard input) and prints the query parameters of each link that has
  any.
`,
	}
	c.initFlags("html")
	return c
}

// NewSitemap returns the "sitemap" subcommand.
func NewSitemap(ui cli.Ui) *LinksCommand {
	c := &LinksCommand{
		baseCommand: baseCommand{UI: ui},
		load:        extract.LinksFromSitemap,
		synopsis:    "Print the query parameters of every URL in an XML sitemap",
		help: `
Usage: paramparse sitemap [options] [FILE|-]

  Collects every <loc> URL of the sitemap or sitemap index in FILE (or
  standard input) and prints the query parameters of each URL that has any.
`,
	}
	c.initFlags("sitemap")
	return c
}

// LinksCommand harvests links from a document and parses the query string of each.
type LinksCommand struct {
	baseCommand

	load     func(io.Reader) ([]string, error)
	synopsis string
	help     string
}

func (c *LinksCommand) Run(args []string) int {
	rest, err := c.parse(args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	r, name, err := c.openInput(rest)
	if err != nil {
		_ = logger.LogInputError(c.log, c.flags.Name(), name, err)
		c.UI.Error(err.Error())
		return 1
	}
	defer r.Close()

	links, err := c.load(r)
	if err != nil {
		_ = logger.LogInputError(c.log, c.flags.Name(), name, err)
		c.UI.Error(err.Error())
		return 1
	}

	results := extract.QueryParams(links, c.queryOptions()...)
	c.log.Info("Links processed",
		zap.String("input", name),
		zap.Int("links", len(links)),
		zap.Int("with_params", len(results)),
	)

	out, err := formatResults(c.cfg.OutputFormat, results)
	if err != nil {
		return c.fail("Error formatting output", err)
	}
	c.UI.Output(out)
	return 0
}

func (c *LinksCommand) Synopsis() string {
	return c.synopsis
}

func (c *LinksCommand) Help() string {
	return c.usage(c.help)
}
