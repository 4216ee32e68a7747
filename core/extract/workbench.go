// This file handles the flat "messages" shape, which is also the
// canonical output shape, so extraction is a direct field mapping.
package extract

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ndurner/chatbot-conversation-converter/core"
)

// WorkbenchExtractor passes the flat "messages" shape through.
type WorkbenchExtractor struct{}

// NewWorkbench creates a WorkbenchExtractor.
func NewWorkbench() *WorkbenchExtractor {
	return &WorkbenchExtractor{}
}

// CanExtract reports whether raw is a JSON object with a "messages" key.
func (e *WorkbenchExtractor) CanExtract(raw []byte) bool {
	return gjson.ValidBytes(raw) && gjson.GetBytes(raw, "messages").Exists()
}

// Extract maps each element's role and content directly, dropping
// messages whose trimmed content is empty.
func (e *WorkbenchExtractor) Extract(raw []byte) (core.Conversation, error) {
	var conv core.Conversation
	for _, m := range gjson.GetBytes(raw, "messages").Array() {
		content := strings.TrimSpace(m.Get("content").String())
		if content == "" {
			continue
		}
		conv.Messages = append(conv.Messages, core.Message{
			Role:    core.NormalizeRole(m.Get("role").String()),
			Content: content,
		})
	}
	return conv, nil
}
