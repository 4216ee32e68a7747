// Package extract implements the Extractor interface for each of the
// recognized input shapes.
//
// This file handles raw chat-page HTML exports. A message is any
// element carrying the author-role marker attribute; messages are
// collected in document order.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ndurner/chatbot-conversation-converter/core"
	"github.com/ndurner/chatbot-conversation-converter/core/htmlmd"
)

// RoleAttr marks the element that carries one chat message.
const RoleAttr = "data-message-author-role"

// blockSelector matches descendants whose presence forces full
// Markdown conversion of a message body instead of plain text.
const blockSelector = "pre, code, table, blockquote, ul, ol"

// ChatPageExtractor parses exported chat-page HTML.
type ChatPageExtractor struct{}

// NewChatPage creates a ChatPageExtractor.
func NewChatPage() *ChatPageExtractor {
	return &ChatPageExtractor{}
}

// CanExtract reports whether raw looks like a chat-page HTML export.
func (e *ChatPageExtractor) CanExtract(raw []byte) bool {
	s := string(raw)
	return strings.Contains(s, "<article") && strings.Contains(s, RoleAttr)
}

// Extract converts every role-marked element into a canonical message.
// Assistant messages use the dedicated markdown body when present; user
// messages get full conversion only when they contain block structure,
// otherwise plain visible text. Empty messages are dropped.
func (e *ChatPageExtractor) Extract(raw []byte) (core.Conversation, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return core.Conversation{}, fmt.Errorf("parsing HTML: %w", err)
	}

	conv := core.Conversation{Model: "ChatGPT-web"}
	doc.Find("[" + RoleAttr + "]").Each(func(_ int, sel *goquery.Selection) {
		role := core.NormalizeRole(strings.ToLower(sel.AttrOr(RoleAttr, "")))

		var content string
		if body := sel.Find(".markdown").First(); body.Length() > 0 {
			content = htmlmd.Convert(body.Nodes[0])
		} else if sel.Find(blockSelector).Length() > 0 {
			content = htmlmd.Convert(sel.Nodes[0])
		} else {
			// Plain visible text. Collapsing all whitespace here is
			// accepted lossy behavior for short user messages.
			content = strings.Join(strings.Fields(sel.Text()), " ")
		}

		if content = strings.TrimSpace(content); content != "" {
			conv.Messages = append(conv.Messages, core.Message{Role: role, Content: content})
		}
	})
	return conv, nil
}
