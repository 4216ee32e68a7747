// Package output handles file naming and writing for converted
// transcripts. Filenames derive from the input file's base name plus
// the renderer suffix: chat.json becomes chat.md in markdown mode and
// chat_converted.json in workbench mode.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory, creating
// it when missing. An empty outputDir means "next to the input file".
func New(outputDir string) (*Writer, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data under the input file's base name plus suffix and
// returns the resulting path.
func (w *Writer) Write(inputPath string, data []byte, suffix string) (string, error) {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	dir := w.OutputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}

	path := filepath.Join(dir, base+suffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
