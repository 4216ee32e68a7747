// Package convert wires detection, extraction, and rendering into a
// single conversion entry point: detect the input shape, extract the
// canonical messages, render them in the requested output format.
package convert

import (
	"fmt"

	"github.com/ndurner/chatbot-conversation-converter/core"
	"github.com/ndurner/chatbot-conversation-converter/core/detect"
	"github.com/ndurner/chatbot-conversation-converter/core/render"
)

// Output format selectors.
const (
	FormatMarkdown  = "markdown"
	FormatWorkbench = "workbench"
)

// Options carries session metadata known only to the caller, such as
// the input file's modification time.
type Options struct {
	Timestamp string
}

// Renderer returns the renderer for the given output format, or
// core.ErrUnsupportedOutputFormat.
func Renderer(outputFormat string) (core.Renderer, error) {
	switch outputFormat {
	case FormatMarkdown:
		return render.NewMarkdownRenderer(), nil
	case FormatWorkbench:
		return render.NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedOutputFormat, outputFormat)
	}
}

// Convert normalizes raw input of any recognized shape and renders it.
// Conversion is a pure single pass: failures are never transient and
// are reported immediately.
func Convert(raw []byte, outputFormat string, opts Options) ([]byte, error) {
	extractor, err := detect.Detect(raw)
	if err != nil {
		return nil, err
	}

	renderer, err := Renderer(outputFormat)
	if err != nil {
		return nil, err
	}

	conv, err := extractor.Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("extracting messages: %w", err)
	}
	if conv.Timestamp == "" {
		conv.Timestamp = opts.Timestamp
	}

	data, err := renderer.Render(conv)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", outputFormat, err)
	}
	return data, nil
}
