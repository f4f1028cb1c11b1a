// Package server exposes the form editing surface as MCP tools over a
// stdio transport.
package server

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HosakaKeigo/mcp-server-google-forms/internal/version"
	"github.com/HosakaKeigo/mcp-server-google-forms/pkg/batch"
)

const serverName = "mcp-server-google-forms"

// Server wires the Forms API client, the batch translator and the MCP
// tool surface together.
type Server struct {
	api        FormsAPI
	translator *batch.Translator
	log        hclog.Logger

	mcp *mcp.Server
}

// New creates a server around the given Forms API client. The client
// is injected once here and threaded through to every handler; no
// handler constructs its own.
func New(api FormsAPI, log hclog.Logger) *Server {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	s := &Server{
		api:        api,
		translator: batch.NewTranslator(api, log.Named("batch")),
		log:        log,
	}

	m := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version.Version,
	}, nil)
	registerTools(m, s)
	s.mcp = m

	return s
}

// Run serves MCP over stdio until the context is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("serving MCP over stdio", "tools", len(toolRegistrations))
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
