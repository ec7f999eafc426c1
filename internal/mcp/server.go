// Package mcp exposes directory listing over the Model Context Protocol so
// AI agents and other MCP clients can enumerate and classify directories.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/akfite/dirlist/internal/core/config"
	"github.com/akfite/dirlist/internal/core/lister"
	"github.com/akfite/dirlist/internal/core/logger"
)

// Server implements the MCP server using mcp-go
type Server struct {
	mcpServer *server.MCPServer
	lister    *lister.Lister
	defaults  lister.ListOptions
	log       logger.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the server logger.
func WithLogger(log logger.Logger) ServerOption {
	return func(s *Server) {
		s.log = log
	}
}

// WithLister replaces the directory lister, used by tests to inject a fake
// filesystem.
func WithLister(l *lister.Lister) ServerOption {
	return func(s *Server) {
		s.lister = l
	}
}

// NewServer creates a new MCP server. The configured defaults apply to every
// fs_list call whose arguments do not override them.
func NewServer(cfg *config.Config, opts ...ServerOption) *Server {
	s := &Server{
		log: logger.Nop(),
	}
	if cfg != nil {
		s.defaults = cfg.Defaults
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.lister == nil {
		s.lister = lister.New(lister.WithLogger(s.log))
	}

	s.mcpServer = server.NewMCPServer(
		"dirlist",
		"1.0.0",
		server.WithLogging(),
	)

	// Register all tools
	s.registerTools()

	return s
}

// Start starts the MCP server on the stdio transport. It returns when the
// client disconnects or the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ServeStdio(s.mcpServer)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
