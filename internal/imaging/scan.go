package imaging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SupportedExtensions matches what the external processor accepts.
var SupportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// FormatList returns the supported extensions as a sorted, comma-separated
// string for user-facing hints.
func FormatList() string {
	exts := make([]string, 0, len(SupportedExtensions))
	for ext := range SupportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

// Entry describes one image found in the input folder.
type Entry struct {
	Path string
	Name string
	Ext  string
	Size int64
}

// ListImages returns the supported images in dir, sorted by name.
// Subdirectories are not descended into.
func ListImages(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var images []Entry
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !SupportedExtensions[ext] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		images = append(images, Entry{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
			Ext:  ext,
			Size: info.Size(),
		})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Name < images[j].Name })
	return images, nil
}

// ListPNGs returns the PNG files in dir, sorted by name. The refine pass
// only ever touches processor output, which is always PNG.
func ListPNGs(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var pngs []Entry
	for _, e := range entries {
		if e.IsDir() || strings.ToLower(filepath.Ext(e.Name())) != ".png" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		pngs = append(pngs, Entry{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
			Ext:  ".png",
			Size: info.Size(),
		})
	}

	sort.Slice(pngs, func(i, j int) bool { return pngs[i].Name < pngs[j].Name })
	return pngs, nil
}

// Format is a sniffed image format.
type Format string

const (
	FormatPNG     Format = "PNG"
	FormatJPEG    Format = "JPEG"
	FormatUnknown Format = ""
)

var (
	pngMagic  = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic = []byte("\xff\xd8\xff")
)

// DetectFormat sniffs the format from the first bytes of r.
// Only the formats the refine pass cares about are distinguished.
func DetectFormat(r io.Reader) (Format, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return FormatUnknown, err
	}

	if bytes.Equal(header[:], pngMagic) {
		return FormatPNG, nil
	}
	if bytes.Equal(header[:len(jpegMagic)], jpegMagic) {
		return FormatJPEG, nil
	}
	return FormatUnknown, nil
}
