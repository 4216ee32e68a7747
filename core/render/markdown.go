// Package render provides output renderers for the conversion
// pipeline. This file implements the Markdown transcript renderer.
package render

import (
	"fmt"
	"strings"

	"github.com/ndurner/chatbot-conversation-converter/core"
)

// MarkdownRenderer builds the Markdown transcript: a session
// information header followed by one fenced ::: role block per
// message. The ::: delimiter survives content that itself contains a
// literal --- (horizontal rules, tables), which a dash separator
// would corrupt.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render produces the Markdown document.
func (r *MarkdownRenderer) Render(conv core.Conversation) ([]byte, error) {
	model := conv.Model
	if model == "" {
		model = "unknown"
	}
	timestamp := conv.Timestamp
	if timestamp == "" {
		timestamp = "Unknown"
	}

	var sb strings.Builder
	sb.WriteString("# Chat Transcript\n\n## Session Information\n\n")
	fmt.Fprintf(&sb, "**Model:** %s\n", model)
	fmt.Fprintf(&sb, "**Timestamp:** %s\n\n", timestamp)
	sb.WriteString("## Conversation\n\n")

	for _, msg := range conv.Messages {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		fmt.Fprintf(&sb, "::: %s\n%s\n:::\n\n", msg.Role, content)
	}

	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

// Extension returns the filename suffix for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
