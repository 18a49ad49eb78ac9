// Package report renders workflow results into shareable review reports.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/brunogum/content-guardian/pkg/models"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
)

// RenderMarkdown builds a Markdown review report for one workflow run.
func RenderMarkdown(input models.ContentInput, wf models.WorkflowResult) string {
	var b strings.Builder

	title := input.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(&b, "# Review report: %s\n\n", title)
	if input.Author != "" {
		fmt.Fprintf(&b, "**Author:** %s  \n", input.Author)
	}
	if input.ContentType != "" {
		fmt.Fprintf(&b, "**Content type:** %s  \n", input.ContentType)
	}
	fmt.Fprintf(&b, "**Workflow:** `%s`  \n", wf.WorkflowID)
	fmt.Fprintf(&b, "**Run at:** %s  \n", wf.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Overall status:** %s\n\n", strings.ToUpper(string(wf.Status)))

	b.WriteString("## Summary\n\n```\n")
	b.WriteString(wf.Summary)
	b.WriteString("```\n\n")

	for _, r := range wf.Results {
		fmt.Fprintf(&b, "## %s: %s\n\n", r.ModuleID, strings.ToUpper(string(r.Status)))
		b.WriteString("```\n")
		b.WriteString(r.Report)
		b.WriteString("\n```\n\n")
		if len(r.RecommendedFixes) > 0 {
			b.WriteString("Recommended fixes:\n\n")
			for _, fix := range r.RecommendedFixes {
				fmt.Fprintf(&b, "- %s\n", fix)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderHTML converts the Markdown report into a standalone HTML document.
func RenderHTML(input models.ContentInput, wf models.WorkflowResult) (string, error) {
	md := RenderMarkdown(input, wf)
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", errors.Wrap(err, "rendering report html")
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&doc, "<title>Review report: %s</title>\n", htmlEscape(input.Title))
	doc.WriteString("<style>body{font-family:sans-serif;max-width:56rem;margin:2rem auto;padding:0 1rem}pre{background:#f6f6f6;padding:1rem;overflow-x:auto}</style>\n")
	doc.WriteString("</head>\n<body>\n")
	doc.WriteString(buf.String())
	doc.WriteString("</body>\n</html>\n")
	return doc.String(), nil
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
