package imaging

import (
	"image"
	"image/draw"
)

// Thresholds for the transparency cleanup. These mirror the ones the
// external processor applies after inference, so refine produces the
// same result as a fresh run.
const (
	whiteThreshold     = 240 // all channels above: near-white background remnant
	faintAlpha         = 50  // below: noise, zero it
	edgeAlphaThreshold = 200 // partially transparent edge band
	edgeBrightness     = 200 // mean RGB above: white fringe on the edge
)

// EnsureTransparency cleans up the alpha channel of a processed image:
// near-white pixels become fully transparent white, faint alpha is
// zeroed, and bright semi-transparent edge fringes are removed.
// The input image is not modified.
func EnsureTransparency(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	img := image.NewNRGBA(bounds)
	draw.Draw(img, bounds, src, bounds.Min, draw.Src)

	for i := 0; i < len(img.Pix); i += 4 {
		r := int(img.Pix[i])
		g := int(img.Pix[i+1])
		b := int(img.Pix[i+2])
		a := int(img.Pix[i+3])

		if r > whiteThreshold && g > whiteThreshold && b > whiteThreshold {
			img.Pix[i] = 255
			img.Pix[i+1] = 255
			img.Pix[i+2] = 255
			img.Pix[i+3] = 0
			continue
		}

		if a < faintAlpha {
			img.Pix[i+3] = 0
			continue
		}

		if a < edgeAlphaThreshold && (r+g+b)/3 > edgeBrightness {
			img.Pix[i+3] = 0
		}
	}

	return img
}
