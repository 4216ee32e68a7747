// Package detect selects the extractor for a raw input by ordered
// capability probing: chat-page HTML first, then the playground
// "input" shape, then the workbench "messages" shape. The order is
// fixed, so an input satisfying several predicates always routes to
// the highest-priority extractor.
package detect

import (
	"github.com/ndurner/chatbot-conversation-converter/core"
	"github.com/ndurner/chatbot-conversation-converter/core/extract"
)

// candidate is an extractor that can report whether it recognizes a
// raw input. Each capability check is a cheap predicate over the raw
// bytes; no extraction work happens during probing.
type candidate interface {
	core.Extractor
	CanExtract(raw []byte) bool
}

// candidates returns the probe list in priority order.
func candidates() []candidate {
	return []candidate{
		extract.NewChatPage(),
		extract.NewPlayground(),
		extract.NewWorkbench(),
	}
}

// Detect returns the first extractor whose predicate matches raw, or
// core.ErrUnsupportedFormat when none does.
func Detect(raw []byte) (core.Extractor, error) {
	for _, c := range candidates() {
		if c.CanExtract(raw) {
			return c, nil
		}
	}
	return nil, core.ErrUnsupportedFormat
}
