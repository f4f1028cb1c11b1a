package serve

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"

	"github.com/HosakaKeigo/mcp-server-google-forms/internal/cmd/base"
	"github.com/HosakaKeigo/mcp-server-google-forms/internal/config"
	"github.com/HosakaKeigo/mcp-server-google-forms/internal/server"
	"github.com/HosakaKeigo/mcp-server-google-forms/pkg/gforms"
)

type Command struct {
	*base.Command

	flagConfig          string
	flagCredentialsFile string
	flagLogLevel        string
}

func (c *Command) Synopsis() string {
	return "Run the MCP server over stdio"
}

func (c *Command) Help() string {
	return `Usage: mcp-server-google-forms serve [options]

  Runs the Google Forms MCP server on stdin/stdout. The server speaks
  the Model Context Protocol; point an MCP client at this command.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("serve", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to an HCL configuration file",
	)
	f.StringVar(
		&c.flagCredentialsFile, "credentials-file", "",
		"[GFORMS_CREDENTIALS_FILE] Path to a service account JSON key file",
	)
	f.StringVar(
		&c.flagLogLevel, "log-level", "",
		"[GFORMS_LOG_LEVEL] Log level (trace, debug, info, warn, error)",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := config.Load(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}
	if c.flagCredentialsFile != "" {
		cfg.CredentialsFile = c.flagCredentialsFile
	}
	if c.flagLogLevel != "" {
		cfg.LogLevel = c.flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		c.UI.Error(fmt.Sprintf("invalid configuration: %v", err))
		return 1
	}

	log := c.Log
	log.SetLevel(hclog.LevelFromString(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var svc *gforms.Service
	if cfg.CredentialsFile != "" {
		svc, err = gforms.NewWithCredentialsFile(ctx, log.Named("gforms"), cfg.CredentialsFile)
	} else {
		svc, err = gforms.New(ctx, log.Named("gforms"))
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating Forms client: %v", err))
		return 1
	}

	srv := server.New(svc, log.Named("server"))
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		c.UI.Error(fmt.Sprintf("server error: %v", err))
		return 1
	}
	return 0
}
