package art

import (
	"bytes"
	"image"
	"image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ColorToken is the placeholder templates carry wherever the theme color
// belongs. Every occurrence is substituted during resolution.
const ColorToken = "{COLOR}"

// Bitmap is a resolved icon: the base render plus a 2x render for high-DPI
// output. Both are plain RGBA images; toolkit backends convert as needed.
type Bitmap struct {
	Size  int
	Base  *image.RGBA
	HiDPI *image.RGBA
}

// PNG encodes the base render.
func (b *Bitmap) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.Base); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PNGHiDPI encodes the 2x render.
func (b *Bitmap) PNGHiDPI() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.HiDPI); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func substituteColor(template, hex string) string {
	return strings.ReplaceAll(template, ColorToken, hex)
}

// rasterize renders one SVG document into a px-by-px RGBA image.
func rasterize(svg string, px int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(px), float64(px))
	img := image.NewRGBA(image.Rect(0, 0, px, px))
	scanner := rasterx.NewScannerGV(px, px, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(px, px, scanner), 1)
	return img, nil
}

// renderBundle renders the base and high-DPI variants of one document.
func renderBundle(svg string, px int) (*Bitmap, error) {
	base, err := rasterize(svg, px)
	if err != nil {
		return nil, err
	}
	hidpi, err := rasterize(svg, px*2)
	if err != nil {
		return nil, err
	}
	return &Bitmap{Size: px, Base: base, HiDPI: hidpi}, nil
}

// templatePreview truncates a template for diagnostics.
func templatePreview(template string) string {
	const max = 200
	if len(template) <= max {
		return template
	}
	return template[:max] + "..."
}
