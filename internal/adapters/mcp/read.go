package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"studytracker/internal/application/commands"
	"studytracker/internal/ports"
)

// RegisterReadTools adds all read-only session tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.SessionRepository) {
	s.AddTool(listSessionsTool(), listSessionsHandler(repo))
	s.AddTool(totalMinutesTool(), totalMinutesHandler(repo))
	s.AddTool(topicSummaryTool(), topicSummaryHandler(repo))
}

// --- list_sessions ---

func listSessionsTool() mcp.Tool {
	return mcp.NewTool("list_sessions",
		mcp.WithDescription("List all recorded study sessions in insertion order."),
	)
}

func listSessionsHandler(repo ports.SessionRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessions, err := commands.NewListCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(sessions) == 0 {
			return mcp.NewToolResultText("No sessions yet."), nil
		}

		var sb strings.Builder
		for i, s := range sessions {
			fmt.Fprintf(&sb, "%d. %s — %s: %d min\n", i+1, s.Date, s.Topic, s.Minutes)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- total_minutes ---

func totalMinutesTool() mcp.Tool {
	return mcp.NewTool("total_minutes",
		mcp.WithDescription("Total minutes studied, optionally for a single topic (case-insensitive exact match)."),
		mcp.WithString("topic",
			mcp.Description("Topic to filter by. Omit for the overall total."),
		),
	)
}

func totalMinutesHandler(repo ports.SessionRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		topic := req.GetString("topic", "")

		result, err := commands.NewReportCommand(repo, topic).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message()), nil
	}
}

// --- topic_summary ---

func topicSummaryTool() mcp.Tool {
	return mcp.NewTool("topic_summary",
		mcp.WithDescription("Per-topic session counts and minute totals, in first-logged order."),
	)
}

func topicSummaryHandler(repo ports.SessionRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := commands.NewSummaryCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(summaries) == 0 {
			return mcp.NewToolResultText("No sessions yet."), nil
		}

		var sb strings.Builder
		for _, s := range summaries {
			fmt.Fprintf(&sb, "%s: %d min over %d sessions\n", s.Topic, s.Minutes, s.Sessions)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
