package asciiart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArtSave(t *testing.T) {
	dir := t.TempDir()
	art := &Art{Text: "@@\n..", Width: 2, Height: 2}

	path, err := art.Save(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != art.Text {
		t.Errorf("Saved %q, expected %q", data, art.Text)
	}
}

func TestArtSaveDefaultExtension(t *testing.T) {
	dir := t.TempDir()
	art := &Art{Text: "@"}

	path, err := art.Save(filepath.Join(dir, "plain"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(path, "plain.txt") {
		t.Errorf("Saved to %q, expected .txt appended", path)
	}
}

func TestArtSaveForcesHTMLExtension(t *testing.T) {
	dir := t.TempDir()
	art := &Art{
		Text:     "<!DOCTYPE html>",
		Colored:  true,
		Settings: Settings{ColorMode: ColorHTMLFg},
	}

	path, err := art.Save(filepath.Join(dir, "page.txt"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(path, "page.html") {
		t.Errorf("Saved to %q, expected .html extension", path)
	}
}

func TestArtSaveCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	art := &Art{Text: "@"}

	path, err := art.Save(filepath.Join(dir, "a", "b", "out.txt"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Saved file missing: %v", err)
	}
}
