package mcptool

import (
	"github.com/alexanderramin/briefsmith/internal/service"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer builds an MCP server with the brief tools registered.
func NewServer(briefs service.BriefService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"briefsmith",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	brief := NewGenerateBriefTool(briefs)
	s.AddTool(brief.Definition(), brief.Handle)

	prompt := NewGeneratePromptTool(briefs)
	s.AddTool(prompt.Definition(), prompt.Handle)

	return s
}

// ServeStdio runs the MCP server over stdin/stdout until the client disconnects.
func ServeStdio(briefs service.BriefService, version string) error {
	return server.ServeStdio(NewServer(briefs, version))
}

const instructions = `briefsmith turns a completed client intake into an internal project brief.
Pass the intake as a JSON string in "intake_json". Use generate_brief for the full
brief and generate_prompt for a planning prompt to hand to another model.
Invalid intakes come back as tool errors listing every missing or malformed field.`
