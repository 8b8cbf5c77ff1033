// Package mcptool exposes brief generation to MCP clients.
package mcptool

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/export"
	"github.com/alexanderramin/briefsmith/internal/importer"
	"github.com/alexanderramin/briefsmith/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

const intakeParam = "intake_json"

// GenerateBriefTool handles the generate_brief MCP tool.
type GenerateBriefTool struct {
	briefs service.BriefService
}

// NewGenerateBriefTool creates a GenerateBriefTool.
func NewGenerateBriefTool(briefs service.BriefService) *GenerateBriefTool {
	return &GenerateBriefTool{briefs: briefs}
}

// Definition returns the MCP tool definition for registration.
func (t *GenerateBriefTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_brief",
		mcp.WithDescription(
			"Turn a completed project intake into an internal project brief. "+
				"Returns markdown with technical requirements, marketing strategy, "+
				"complexity, risks, discovery questions and a solution blueprint.",
		),
		mcp.WithString(intakeParam,
			mcp.Required(),
			mcp.Description("The intake as a JSON object using the intake field names (companyName, scope, priority, ...)."),
		),
	)
}

// Handle processes the generate_brief tool call.
func (t *GenerateBriefTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, errResult := parseRequest(ctx, t.briefs, req)
	if errResult != nil {
		return errResult, nil
	}

	b, err := t.briefs.Generate(ctx, in)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generating brief: %v", err)), nil
	}
	return mcp.NewToolResultText(export.Markdown(in, b)), nil
}

// GeneratePromptTool handles the generate_prompt MCP tool.
type GeneratePromptTool struct {
	briefs service.BriefService
}

// NewGeneratePromptTool creates a GeneratePromptTool.
func NewGeneratePromptTool(briefs service.BriefService) *GeneratePromptTool {
	return &GeneratePromptTool{briefs: briefs}
}

// Definition returns the MCP tool definition for registration.
func (t *GeneratePromptTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_prompt",
		mcp.WithDescription(
			"Render the planning prompt for a completed project intake. "+
				"The prompt asks for a phased plan, tool recommendations, risks and open questions.",
		),
		mcp.WithString(intakeParam,
			mcp.Required(),
			mcp.Description("The intake as a JSON object using the intake field names (companyName, scope, priority, ...)."),
		),
	)
}

// Handle processes the generate_prompt tool call.
func (t *GeneratePromptTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, errResult := parseRequest(ctx, t.briefs, req)
	if errResult != nil {
		return errResult, nil
	}

	prompt, err := t.briefs.Prompt(ctx, in)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering prompt: %v", err)), nil
	}
	return mcp.NewToolResultText(prompt), nil
}

// parseRequest decodes and validates the intake argument. A non-nil result
// is the error to hand back to the client.
func parseRequest(ctx context.Context, briefs service.BriefService, req mcp.CallToolRequest) (*domain.Intake, *mcp.CallToolResult) {
	raw := strings.TrimSpace(req.GetString(intakeParam, ""))
	if raw == "" {
		return nil, mcp.NewToolResultError("'" + intakeParam + "' is required")
	}

	in, err := importer.ParseIntake([]byte(raw), importer.FormatJSON)
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}

	if errs := briefs.Validate(ctx, in); len(errs) > 0 {
		return nil, mcp.NewToolResultError(validationMessage(errs))
	}
	return in, nil
}

func validationMessage(errs []error) string {
	var b strings.Builder
	b.WriteString(importer.ErrInvalidIntake.Error())
	b.WriteString(":")
	for _, err := range errs {
		b.WriteString("\n- ")
		b.WriteString(err.Error())
	}
	return b.String()
}
