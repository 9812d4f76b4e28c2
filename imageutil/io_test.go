package imageutil

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeTestPNG(t *testing.T, path string, img *RGBAImage) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img.RGBA); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradient.png")
	writeTestPNG(t, path, CreateGradientImage(16, 8))

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Width() != 16 || img.Height() != 8 {
		t.Errorf("Loaded %dx%d, expected 16x8", img.Width(), img.Height())
	}
	if img.GetRGB(0, 0).R != 0 {
		t.Errorf("Left edge R = %d, expected 0", img.GetRGB(0, 0).R)
	}
	if img.GetRGB(15, 0).R != 255 {
		t.Errorf("Right edge R = %d, expected 255", img.GetRGB(15, 0).R)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	// The extension is rejected before the file is touched, so the path
	// does not need to exist.
	_, err := Load("drawing.xcf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected decode error for corrupt file")
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"photo.png", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"icon.ico", true},
		{"scan.tiff", true},
		{"anim.webp", true},
		{"photo.txt", false},
		{"noext", false},
	}

	for _, test := range tests {
		if got := IsSupported(test.path); got != test.expected {
			t.Errorf("IsSupported(%q) = %v, expected %v", test.path, got, test.expected)
		}
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	if !sort.StringsAreSorted(exts) {
		t.Error("Extensions are not sorted")
	}
	found := false
	for _, e := range exts {
		if e == ".png" {
			found = true
		}
	}
	if !found {
		t.Error("Expected .png in the supported extensions")
	}
}

func TestInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solid.png")
	writeTestPNG(t, path, CreateSolidImage(32, 24, RGB{R: 128, G: 128, B: 128}))

	info, err := Info(path)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Format != "png" {
		t.Errorf("Format = %q, expected png", info.Format)
	}
	if info.Width != 32 || info.Height != 24 {
		t.Errorf("Dimensions %dx%d, expected 32x24", info.Width, info.Height)
	}
	if info.FileSize <= 0 {
		t.Errorf("FileSize = %d, expected positive", info.FileSize)
	}
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "b.png"), CreateSolidImage(2, 2, RGB{}))
	writeTestPNG(t, filepath.Join(dir, "a.png"), CreateSolidImage(2, 2, RGB{}))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := ListImages(dir)
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Found %d images, expected 2: %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "a.png" || filepath.Base(paths[1]) != "b.png" {
		t.Errorf("Expected sorted order, got %v", paths)
	}
}
