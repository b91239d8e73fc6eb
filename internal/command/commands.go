// internal/command/commands.go
package command

import (
	"io"

	"github.com/mitchellh/cli"
)

// Commands returns the paramparse subcommands. stdin and logs are shared by all of them.
func Commands(ui cli.Ui, stdin io.Reader, logs io.Writer) map[string]cli.CommandFactory {
	wire := func(b *baseCommand) {
		b.Stdin = stdin
		b.LogWriter = logs
	}

	return map[string]cli.CommandFactory{
		"query": func() (cli.Command, error) {
			c := NewQuery(ui)
			wire(&c.baseCommand)
			return c, nil
		},
		"cookie": func() (cli.Command, error) {
			c := NewCookie(ui)
			wire(&c.baseCommand)
			return c, nil
		},
		"html": func() (cli.Command, error) {
			c := NewHTML(ui)
			wire(&c.baseCommand)
			return c, nil
		},
		"sitemap": func() (cli.Command, error) {
			c := NewSitemap(ui)
			wire(&c.baseCommand)
			return c, nil
		},
	}
}
