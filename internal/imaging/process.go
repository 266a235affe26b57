package imaging

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"

	// Decoders for the supported input formats.
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	cuterrors "github.com/imgtools/cutout/internal/errors"
)

// OutputSuffix marks files produced by the processor.
const OutputSuffix = "_no_bg"

// OutputName returns the output file name for an input image,
// e.g. "photo.jpg" -> "photo_no_bg.png".
func OutputName(inputName string) string {
	stem := strings.TrimSuffix(inputName, filepath.Ext(inputName))
	return stem + OutputSuffix + ".png"
}

// Decode opens and decodes any supported image file.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, cuterrors.ErrDecodeImage(path, err)
	}
	return img, nil
}

// Downscale shrinks img so its longest side is at most maxSize pixels.
// Images already within bounds (or maxSize 0) are returned unchanged.
// Lanczos keeps edges crisp, which matters for cutouts.
func Downscale(img image.Image, maxSize int) image.Image {
	if maxSize <= 0 {
		return img
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxSize && h <= maxSize {
		return img
	}
	if w >= h {
		return resize.Resize(uint(maxSize), 0, img, resize.Lanczos3)
	}
	return resize.Resize(0, uint(maxSize), img, resize.Lanczos3)
}

// SavePNG writes img to path as a PNG, creating parent directories.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// RefineFile applies the transparency cleanup (and optional downscale)
// to one PNG in place.
func RefineFile(path string, maxSize int) error {
	img, err := Decode(path)
	if err != nil {
		return err
	}

	cleaned := EnsureTransparency(img)
	final := Downscale(cleaned, maxSize)

	return SavePNG(path, final)
}

// RefineDir runs RefineFile over every PNG in dir and reports how many
// files were refined and how many failed. Per-file failures are
// recoverable: the pass continues and the caller decides what to do
// with the errors. The progress hook, when non-nil, is called once per
// file after it has been handled.
func RefineDir(dir string, maxSize int, progress func(name string)) (refined int, failures []error) {
	entries, err := ListPNGs(dir)
	if err != nil {
		return 0, []error{err}
	}

	for _, e := range entries {
		if err := RefineFile(e.Path, maxSize); err != nil {
			failures = append(failures, err)
		} else {
			refined++
		}
		if progress != nil {
			progress(e.Name)
		}
	}
	return refined, failures
}
