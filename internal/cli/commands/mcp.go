package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/akfite/dirlist/internal/core/logger"
	"github.com/akfite/dirlist/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI agent integration.

The server exposes directory listing as tools over stdio, so any MCP
client can enumerate and classify directory contents.`,
	RunE: runMCP,
}

var mcpDebug bool

func init() {
	mcpCmd.Flags().BoolVar(&mcpDebug, "debug", false, "Enable debug logging on stderr")
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Stdout carries the stdio transport, so logs must go to stderr.
	level := slog.LevelInfo
	if mcpDebug {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevel(level),
	)

	server := mcp.NewServer(cfg, mcp.WithLogger(log))

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutting down MCP server")
		cancel()
	}()

	log.Info("starting MCP server", "transport", "stdio")
	return server.Start(ctx)
}
