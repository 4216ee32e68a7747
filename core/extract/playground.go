// This file handles the nested "input" items shape produced by the
// playground export: each item carries a role and a list of typed
// content entries.
package extract

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ndurner/chatbot-conversation-converter/core"
)

// PlaygroundExtractor maps the nested "input" shape onto canonical
// messages.
type PlaygroundExtractor struct{}

// NewPlayground creates a PlaygroundExtractor.
func NewPlayground() *PlaygroundExtractor {
	return &PlaygroundExtractor{}
}

// CanExtract reports whether raw is a JSON object with an "input" key.
func (e *PlaygroundExtractor) CanExtract(raw []byte) bool {
	return gjson.ValidBytes(raw) && gjson.GetBytes(raw, "input").Exists()
}

// Extract takes, per item, the first content entry whose type matches
// the role (input_text for user, output_text for assistant). Items
// with any other role, or with no matching entry, are skipped.
func (e *PlaygroundExtractor) Extract(raw []byte) (core.Conversation, error) {
	conv := core.Conversation{Model: gjson.GetBytes(raw, "model").String()}

	for _, item := range gjson.GetBytes(raw, "input").Array() {
		role := item.Get("role").String()
		var wantType string
		switch core.Role(role) {
		case core.RoleUser:
			wantType = "input_text"
		case core.RoleAssistant:
			wantType = "output_text"
		default:
			continue
		}

		for _, entry := range item.Get("content").Array() {
			if entry.Get("type").String() != wantType {
				continue
			}
			if text := strings.TrimSpace(entry.Get("text").String()); text != "" {
				conv.Messages = append(conv.Messages, core.Message{
					Role:    core.Role(role),
					Content: text,
				})
			}
			break
		}
	}
	return conv, nil
}
