package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ndurner/chatbot-conversation-converter/config"
	"github.com/ndurner/chatbot-conversation-converter/core/convert"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagMarkdown = false
		flagWorkbench = false
		flagPreview = false
		flagOutputDir = ""
	})
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("CHATCONV_FORMAT", "")
	t.Setenv("CHATCONV_OUTPUT_DIR", "")
}

func TestRunConvertWritesMarkdown(t *testing.T) {
	isolateEnv(t)
	resetFlags(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "chat.json")
	raw := `{"messages":[{"role":"user","content":"Hi"}]}`
	if err := os.WriteFile(input, []byte(raw), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	flagMarkdown = true
	if err := runConvert(convertCmd, []string{input}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "chat.md"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	md := string(data)
	if !strings.Contains(md, "# Chat Transcript") {
		t.Errorf("missing document heading:\n%s", md)
	}
	if !strings.Contains(md, "::: user\nHi\n:::") {
		t.Errorf("missing message block:\n%s", md)
	}
	if strings.Contains(md, "**Timestamp:** Unknown") {
		t.Error("timestamp should come from the input file's mtime")
	}
}

func TestRunConvertWritesWorkbench(t *testing.T) {
	isolateEnv(t)
	resetFlags(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "chat.json")
	raw := `{"input":[{"role":"user","content":[{"type":"input_text","text":"Hello"}]}]}`
	if err := os.WriteFile(input, []byte(raw), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	flagWorkbench = true
	if err := runConvert(convertCmd, []string{input}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "chat_converted.json"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), `"content": "Hello"`) {
		t.Errorf("missing converted message:\n%s", data)
	}
}

func TestRunConvertMissingInput(t *testing.T) {
	isolateEnv(t)
	resetFlags(t)

	flagMarkdown = true
	err := runConvert(convertCmd, []string{filepath.Join(t.TempDir(), "nope.json")})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestResolveFormat(t *testing.T) {
	resetFlags(t)

	cases := []struct {
		name      string
		markdown  bool
		workbench bool
		cfg       config.Config
		want      string
		wantErr   bool
	}{
		{"markdown flag", true, false, config.Config{}, convert.FormatMarkdown, false},
		{"workbench flag", false, true, config.Config{}, convert.FormatWorkbench, false},
		{"both flags", true, true, config.Config{}, "", true},
		{"config default", false, false, config.Config{DefaultFormat: "workbench"}, convert.FormatWorkbench, false},
		{"flag beats config", true, false, config.Config{DefaultFormat: "workbench"}, convert.FormatMarkdown, false},
		{"nothing", false, false, config.Config{}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flagMarkdown = tc.markdown
			flagWorkbench = tc.workbench
			got, err := resolveFormat(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveFormat failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
