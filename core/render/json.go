// Package render — workbench JSON renderer.
// Emits the canonical {"messages": [...]} shape, which round-trips
// through the workbench extractor unchanged.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/ndurner/chatbot-conversation-converter/core"
)

// workbenchDoc is the canonical output shape.
type workbenchDoc struct {
	Messages []core.Message `json:"messages"`
}

// JSONRenderer produces workbench JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the conversation's messages. Session metadata is
// Markdown-only and never appears in workbench output.
func (r *JSONRenderer) Render(conv core.Conversation) ([]byte, error) {
	messages := conv.Messages
	if messages == nil {
		messages = []core.Message{}
	}
	data, err := json.MarshalIndent(workbenchDoc{Messages: messages}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the filename suffix for workbench output.
func (r *JSONRenderer) Extension() string {
	return "_converted.json"
}
