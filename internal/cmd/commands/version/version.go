package version

import (
	"github.com/HosakaKeigo/mcp-server-google-forms/internal/cmd/base"
	"github.com/HosakaKeigo/mcp-server-google-forms/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: mcp-server-google-forms version

  Prints the version of this binary.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
