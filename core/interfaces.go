// Package core defines the conversion pipeline for chatconv.
// Each stage of the pipeline is a clean, testable interface.
package core

import "errors"

// Errors reported by format detection and output selection.
var (
	ErrUnsupportedFormat       = errors.New("unsupported chat format")
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)

// Role identifies the author of a message. Exactly two values exist;
// any other label found in an input is normalized to RoleUser.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// NormalizeRole maps a raw role label onto the two canonical roles.
func NormalizeRole(raw string) Role {
	if raw == string(RoleAssistant) {
		return RoleAssistant
	}
	return RoleUser
}

// Message is the canonical {role, content} record shared by all
// extractors and renderers. Content is trimmed; messages with empty
// content are never emitted.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered message sequence plus optional session
// metadata used only for Markdown header rendering.
type Conversation struct {
	Messages  []Message
	Model     string // "" renders as "unknown"
	Timestamp string // "" renders as "Unknown"
}

// Extractor converts one recognized raw input shape into an ordered
// sequence of canonical messages.
type Extractor interface {
	Extract(raw []byte) (Conversation, error)
}

// Renderer converts a Conversation into a final output format.
type Renderer interface {
	Render(conv Conversation) ([]byte, error)
	// Extension returns the filename suffix for this renderer
	// (e.g. ".md", "_converted.json").
	Extension() string
}
