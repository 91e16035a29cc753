package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"vaultmigrate/internal/adapters/filesystem"
	mcpadapter "vaultmigrate/internal/adapters/mcp"
	"vaultmigrate/internal/adapters/sqlite"
	"vaultmigrate/internal/config"
	"vaultmigrate/internal/logging"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	mappingFlag := flag.String("mapping", "", "mapping file (default: mapping.json in the vault)")
	flag.Parse()

	// stdout carries the protocol, so the logger writes to stderr only
	logger, err := logging.New(config.LogLevel())
	if err != nil {
		log.Fatalf("vaultmigrate-mcp: %v", err)
	}
	defer logger.Sync()

	vaultPath := config.ExpandHome(*vaultFlag)
	mappingPath := *mappingFlag
	if mappingPath == "" {
		mappingPath = config.MappingPathIn(vaultPath)
	}

	deps := mcpadapter.Deps{
		Mappings:  filesystem.NewMappingFile(config.ExpandHome(mappingPath)),
		VaultPath: vaultPath,
	}

	idx := sqlite.NewIndex()
	if err := idx.Open(vaultPath); err != nil {
		logger.Warn("search disabled, index unavailable", zap.Error(err))
	} else {
		defer idx.Close()
		deps.Index = idx
	}

	mcpServer := server.NewMCPServer(
		"vaultmigrate-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, deps)

	logger.Info("serving MCP on stdio", zap.String("vault", vaultPath))
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("vaultmigrate-mcp: %v", err)
	}
}
