package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const pageStyle = "body{font-family:system-ui,sans-serif;max-width:860px;margin:2rem auto;padding:0 1rem;color:#1f2937;line-height:1.5;} " +
	"h1{border-bottom:2px solid #e5e7eb;padding-bottom:.4rem;} h2{margin-top:2rem;} " +
	"ul.contains-task-list{list-style:none;padding-left:1rem;} " +
	".complexity-badge{display:inline-block;padding:.2rem .6rem;border-radius:999px;color:#fff;font-weight:600;}"

// HTML renders the markdown brief through goldmark. Raw HTML in the source is
// never passed through; client text is escaped before conversion.
func HTML(in *domain.Intake, b *domain.Brief) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(Markdown(in, b)), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	badge := fmt.Sprintf("<span class='complexity-badge' style='background:%s'>Complexity: %s</span>",
		html.EscapeString(b.Complexity.Color), html.EscapeString(string(b.Complexity.Level)))

	return "<!doctype html><html><head><meta charset='utf-8'>" +
		"<title>Project Brief: " + html.EscapeString(in.CompanyName) + "</title>" +
		"<style>" + pageStyle + "</style></head><body>" +
		"<header>" + badge + "</header>" +
		"<main>" + content.String() + "</main>" +
		"</body></html>", nil
}
