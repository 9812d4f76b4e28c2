package imageutil

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/biessek/golang-ico" // ICO decoder
	_ "golang.org/x/image/bmp"        // BMP decoder
	_ "golang.org/x/image/tiff"       // TIFF decoder
	_ "golang.org/x/image/webp"       // WEBP decoder
)

var (
	// ErrNotFound indicates that the image path does not resolve to a file.
	ErrNotFound = errors.New("image not found")

	// ErrUnsupportedFormat indicates a file extension outside the
	// supported set. It is raised before any pixel work.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// supportedFormats is the set of recognized file extensions. Decoding is
// delegated to the registered image decoders.
var supportedFormats = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
	".ico":  true,
}

// SupportedExtensions returns the sorted list of recognized file
// extensions, including the leading dot.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedFormats))
	for ext := range supportedFormats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsSupported reports whether the path has a recognized image extension.
func IsSupported(path string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(path))]
}

// Load decodes the image at path into an RGBA buffer. The extension is
// validated before the file is opened so unsupported formats fail fast.
func Load(path string) (*RGBAImage, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return RGBAImageFromImage(img), nil
}

// ImageInfo describes a decodable image file without loading its pixels.
type ImageInfo struct {
	Path     string
	Format   string
	Width    int
	Height   int
	FileSize int64
}

// Info reads image metadata from the file header.
func Info(path string) (ImageInfo, error) {
	if !IsSupported(path) {
		return ImageInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ImageInfo{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return ImageInfo{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ImageInfo{
		Path:     path,
		Format:   format,
		Width:    cfg.Width,
		Height:   cfg.Height,
		FileSize: st.Size(),
	}, nil
}

// ListImages returns the supported image files directly inside dir,
// sorted by name. Subdirectories are not descended into.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsSupported(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
