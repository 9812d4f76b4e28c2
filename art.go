package asciiart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Art is the rendered artifact of one conversion: the output text or
// markup plus the dimensions and settings that produced it. It is
// immutable after creation.
type Art struct {
	Text     string
	Width    int
	Height   int
	Colored  bool
	Emoji    bool
	Settings Settings
}

func (a *Art) String() string { return a.Text }

// Save writes the artifact to path and returns the path actually
// written. HTML output forces a .html extension; paths without an
// extension get .txt. Parent directories are created as needed.
func (a *Art) Save(path string) (string, error) {
	ext := filepath.Ext(path)
	if a.Colored && a.Settings.ColorMode.HTML() {
		if strings.ToLower(ext) != ".html" {
			path = strings.TrimSuffix(path, ext) + ".html"
		}
	} else if ext == "" {
		path += ".txt"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(a.Text), 0o644); err != nil {
		return "", fmt.Errorf("failed to save art: %w", err)
	}
	return path, nil
}
