package mcp

import (
	"context"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"studytracker/internal/application/commands"
	"studytracker/internal/ports"
)

// RegisterWriteTools adds all session-recording tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.SessionRepository) {
	s.AddTool(addSessionTool(), addSessionHandler(repo))
}

// --- add_session ---

func addSessionTool() mcp.Tool {
	return mcp.NewTool("add_session",
		mcp.WithDescription("Record a study session."),
		mcp.WithString("topic",
			mcp.Description("What was studied"),
			mcp.Required(),
		),
		mcp.WithNumber("minutes",
			mcp.Description("Minutes spent (positive integer)"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Session date as YYYY-MM-DD. Omit for today."),
		),
	)
}

func addSessionHandler(repo ports.SessionRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		topic := req.GetString("topic", "")
		date := req.GetString("date", "")

		// JSON numbers arrive as float64; fractional minutes are invalid
		minutesArg := req.GetFloat("minutes", 0)
		minutes := int(minutesArg)
		if float64(minutes) != minutesArg || math.IsNaN(minutesArg) {
			return mcp.NewToolResultError("minutes must be a positive integer"), nil
		}

		cmd := commands.NewAddCommand(repo, topic, minutes, date)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
