package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultmigrate/internal/application/commands"
	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/ports"
)

// Deps are the adapters the tools read from. Index may be nil, in which
// case the search tool is not registered.
type Deps struct {
	Mappings  ports.MappingRepository
	Index     ports.MappingIndex
	VaultPath string
}

// RegisterTools adds all read-only migration tools to the MCP server.
func RegisterTools(s *server.MCPServer, deps Deps) {
	s.AddTool(lookupTool(), lookupHandler(deps))
	s.AddTool(classifyTool(), classifyHandler())
	s.AddTool(stableIDTool(), stableIDHandler())
	s.AddTool(categoriesTool(), categoriesHandler())
	if deps.Index != nil {
		s.AddTool(searchTool(), searchHandler(deps.Index))
	}
}

// --- lookup ---

func lookupTool() mcp.Tool {
	return mcp.NewTool("lookup",
		mcp.WithDescription("Find where a source file was migrated to. Pass either a stable ID or the absolute source path."),
		mcp.WithString("sid",
			mcp.Description("Stable ID (16 lowercase hex characters)"),
		),
		mcp.WithString("source_path",
			mcp.Description("Absolute path of the original Notion or Box file"),
		),
	)
}

func lookupHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sid := req.GetString("sid", "")
		source := req.GetString("source_path", "")

		var cmd *commands.LookupCommand
		switch {
		case source != "" && sid == "":
			cmd = commands.NewLookupBySourceCommand(deps.Mappings, deps.VaultPath, source)
		case sid != "":
			cmd = commands.NewLookupCommand(deps.Mappings, deps.VaultPath, sid)
			cmd.SourcePath = source
		default:
			return toolError(errors.New("sid or source_path is required"))
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatLookup(result)), nil
	}
}

func formatLookup(r *commands.LookupResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "sid: %s\n", r.ID)
	fmt.Fprintf(&sb, "title: %s\n", r.Entry.Title)
	fmt.Fprintf(&sb, "category: %s\n", r.Entry.Category)
	fmt.Fprintf(&sb, "type: %s\n", r.Entry.Type)
	if r.Entry.OriginalExt != "" {
		fmt.Fprintf(&sb, "original_ext: %s\n", r.Entry.OriginalExt)
	}
	fmt.Fprintf(&sb, "source: %s\n", r.Entry.Source)
	fmt.Fprintf(&sb, "dest: %s\n", r.Entry.Dest)
	fmt.Fprintf(&sb, "file: %s\n", r.FilePath)
	fmt.Fprintf(&sb, "migrated_at: %s\n", r.Entry.MigratedAt)
	return sb.String()
}

// --- classify ---

func classifyTool() mcp.Tool {
	return mcp.NewTool("classify",
		mcp.WithDescription("Preview the category, slug and vault destination a title and body would be migrated to."),
		mcp.WithString("title",
			mcp.Description("Document title"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Document body"),
		),
		mcp.WithString("source_path",
			mcp.Description("Absolute source path; when given the stable ID is included"),
		),
	)
}

func classifyHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewClassifyCommand(
			req.GetString("title", ""),
			req.GetString("content", ""),
			req.GetString("source_path", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "category: %s\n", result.Category)
		fmt.Fprintf(&sb, "slug: %s\n", result.Slug)
		fmt.Fprintf(&sb, "dest: %s\n", result.Dest)
		if result.ID != "" {
			fmt.Fprintf(&sb, "sid: %s\n", result.ID)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- stable_id ---

func stableIDTool() mcp.Tool {
	return mcp.NewTool("stable_id",
		mcp.WithDescription("Compute the stable ID for an absolute source path."),
		mcp.WithString("path",
			mcp.Description("Absolute source path"),
			mcp.Required(),
		),
	)
}

func stableIDHandler() server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(errors.New("path is required"))
		}
		return mcp.NewToolResultText(domain.NewStableID(path).String()), nil
	}
}

// --- categories ---

func categoriesTool() mcp.Tool {
	return mcp.NewTool("categories",
		mcp.WithDescription("List the category taxonomy in match order with its keywords. The last category is the default."),
	)
}

func categoriesHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lines := make([]string, 0, len(domain.Taxonomy)+1)
		for _, rule := range domain.Taxonomy {
			lines = append(lines, fmt.Sprintf("%s  %s", rule.Category, strings.Join(rule.Keywords, ", ")))
		}
		lines = append(lines, fmt.Sprintf("%s  (default)", domain.DefaultCategory))
		return formatEntities(lines, func(s string) string { return s })
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search migrated documents by title, source file name, destination or stable ID."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
		mcp.WithBoolean("exact",
			mcp.Description("Substring match only instead of fuzzy matching"),
		),
	)
}

func searchHandler(index ports.MappingIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(errors.New("query is required"))
		}

		cmd := commands.NewSearchCommand(index, query)
		cmd.Exact = req.GetBool("exact", false)
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(results, formatSearchResult)
	}
}

func formatSearchResult(r commands.SearchResult) string {
	return fmt.Sprintf("%s  [%s]  %s  %s", r.ID, r.Category, r.Title, r.Dest)
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
