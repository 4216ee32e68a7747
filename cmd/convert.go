// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// read → detect → extract → render → write.
//
// It handles flag validation, output format selection, and the
// --preview mode.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/ndurner/chatbot-conversation-converter/config"
	"github.com/ndurner/chatbot-conversation-converter/core/convert"
	"github.com/ndurner/chatbot-conversation-converter/core/output"
)

// timestampLayout renders the input file's modification time in the
// session header.
const timestampLayout = "2006-01-02 15:04:05"

// Flag variables.
var (
	flagMarkdown  bool
	flagWorkbench bool
	flagPreview   bool
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a chat transcript to the specified output format",
	Long: `Convert reads a chat transcript file, detects its format (chat-page HTML,
playground JSON, or workbench JSON), and converts it to Markdown or
canonical workbench JSON.

Examples:
  chatconv convert chat.json --markdown
  chatconv convert chat.json --workbench --output_dir ./out
  chatconv convert export.html --markdown --preview`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	convertCmd.Flags().BoolVar(&flagWorkbench, "workbench", false, "Output workbench JSON")

	// Preview renders Markdown to the terminal instead of a file.
	convertCmd.Flags().BoolVar(&flagPreview, "preview", false, "Render Markdown to the terminal instead of writing a file")

	// Output directory.
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: alongside the input file)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}
	if flagPreview && format != convert.FormatMarkdown {
		return fmt.Errorf("--preview requires markdown output")
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	// The session timestamp is the input file's modification time.
	var opts convert.Options
	if info, err := os.Stat(inputPath); err == nil {
		opts.Timestamp = info.ModTime().Format(timestampLayout)
	}

	data, err := convert.Convert(raw, format, opts)
	if err != nil {
		return err
	}

	if flagPreview {
		return preview(data)
	}

	outputDir := flagOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	writer, err := output.New(outputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	// Already validated by the conversion above.
	renderer, _ := convert.Renderer(format)

	path, err := writer.Write(inputPath, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// resolveFormat picks the output format from flags, falling back to
// the configured default. Both format flags at once is an error, as
// is having neither a flag nor a configured default.
func resolveFormat(cfg config.Config) (string, error) {
	if flagMarkdown && flagWorkbench {
		return "", fmt.Errorf("--markdown and --workbench are mutually exclusive")
	}
	switch {
	case flagMarkdown:
		return convert.FormatMarkdown, nil
	case flagWorkbench:
		return convert.FormatWorkbench, nil
	case cfg.DefaultFormat != "":
		return cfg.DefaultFormat, nil
	default:
		return "", fmt.Errorf("exactly one output format is required: --markdown or --workbench")
	}
}

// preview renders the Markdown document to the terminal with ANSI
// styling instead of writing a file.
func preview(data []byte) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("initializing preview renderer: %w", err)
	}
	out, err := r.Render(string(data))
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	fmt.Fprint(os.Stdout, out)
	return nil
}
