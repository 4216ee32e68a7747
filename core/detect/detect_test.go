package detect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ndurner/chatbot-conversation-converter/core"
	"github.com/ndurner/chatbot-conversation-converter/core/extract"
)

func TestDetectRoutesEachShape(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		wantType string
	}{
		{"chat-page HTML", `<article data-message-author-role="user">hi</article>`, "*extract.ChatPageExtractor"},
		{"playground JSON", `{"input":[]}`, "*extract.PlaygroundExtractor"},
		{"workbench JSON", `{"messages":[]}`, "*extract.WorkbenchExtractor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Detect([]byte(tc.raw))
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if gotType := fmt.Sprintf("%T", got); gotType != tc.wantType {
				t.Errorf("got %s, want %s", gotType, tc.wantType)
			}
		})
	}
}

func TestDetectHTMLWinsOverJSON(t *testing.T) {
	// Valid workbench JSON that also satisfies the HTML predicate:
	// priority order must route it to the HTML extractor.
	raw := `{"messages":[],"note":"<article data-message-author-role=\"user\">"}`

	got, err := Detect([]byte(raw))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if _, ok := got.(*extract.ChatPageExtractor); !ok {
		t.Errorf("got %T, want ChatPageExtractor", got)
	}
}

func TestDetectPlaygroundWinsOverWorkbench(t *testing.T) {
	raw := `{"input":[],"messages":[]}`

	got, err := Detect([]byte(raw))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if _, ok := got.(*extract.PlaygroundExtractor); !ok {
		t.Errorf("got %T, want PlaygroundExtractor", got)
	}
}

func TestDetectUnsupportedFormat(t *testing.T) {
	for _, raw := range []string{
		"just some text",
		`{"other":true}`,
		`{"messages":`,
		`[{"messages":[]}]`,
	} {
		if _, err := Detect([]byte(raw)); !errors.Is(err, core.ErrUnsupportedFormat) {
			t.Errorf("Detect(%q) error = %v, want ErrUnsupportedFormat", raw, err)
		}
	}
}
