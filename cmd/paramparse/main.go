// cmd/paramparse/main.go
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/deploymenttheory/go-api-http-params/internal/command"
	"github.com/deploymenttheory/go-api-http-params/version"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	ui := &cli.BasicUi{Reader: os.Stdin, Writer: os.Stdout, ErrorWriter: os.Stderr}

	c := cli.NewCLI(version.GetAppName(), version.GetVersion())
	c.Args = args
	c.Commands = command.Commands(ui, os.Stdin, os.Stderr)
	c.HelpWriter = os.Stdout

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %v\n", err)
		return 1
	}
	return exitCode
}
