package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"studytracker/internal/adapters/jsonfile"
	mcpadapter "studytracker/internal/adapters/mcp"
	"studytracker/internal/config"
)

func main() {
	storeFlag := flag.String("store", config.BaseDir(), "data directory holding sessions.json")
	flag.Parse()

	store, err := jsonfile.NewStore(*storeFlag)
	if err != nil {
		log.Fatalf("studytracker-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"studytracker-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("studytracker-mcp: %v", err)
	}
}
