package sprite

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/halfblock/palette"
	"github.com/lixenwraith/halfblock/surface"
)

// DefaultAlphaThreshold is the minimum alpha for a pixel to be opaque
const DefaultAlphaThreshold = 128

// Options control image conversion
type Options struct {
	// Target size in pixels; one zero dimension keeps the source aspect ratio,
	// both zero keeps the source size
	Width  int
	Height int

	// Colors limits matching to the first n palette entries, 0 means 256
	Colors int

	// Dither applies Floyd-Steinberg error diffusion
	Dither bool

	// Scaler resamples the source, nil means ApproxBiLinear
	Scaler xdraw.Scaler

	// AlphaThreshold below which pixels are transparent, 0 means DefaultAlphaThreshold
	AlphaThreshold uint8
}

// FromImage scales img to the requested size and maps every pixel to the nearest palette color
func FromImage(img image.Image, opt Options) *Sprite {
	src := img.Bounds()
	w, h := targetSize(src.Dx(), src.Dy(), opt.Width, opt.Height)
	s := New(w, h)
	if w == 0 || h == 0 {
		return s
	}

	rect := image.Rect(0, 0, w, h)
	rgba := image.NewRGBA(rect)
	if w == src.Dx() && h == src.Dy() {
		xdraw.Copy(rgba, image.Point{}, img, src, xdraw.Src, nil)
	} else {
		scaler := opt.Scaler
		if scaler == nil {
			scaler = xdraw.ApproxBiLinear
		}
		scaler.Scale(rgba, rect, img, src, xdraw.Src, nil)
	}

	colors := opt.Colors
	if colors <= 0 || colors > surface.MaxColors {
		colors = surface.MaxColors
	}
	threshold := opt.AlphaThreshold
	if threshold == 0 {
		threshold = DefaultAlphaThreshold
	}

	var indexed *image.Paletted
	if opt.Dither {
		indexed = image.NewPaletted(rect, palette.Palette(colors))
		xdraw.FloydSteinberg.Draw(indexed, rect, rgba, image.Point{})
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := rgba.PixOffset(x, y)
			a := rgba.Pix[off+3]
			if a < threshold {
				continue
			}
			var c surface.Color
			if indexed != nil {
				c = surface.Color(indexed.ColorIndexAt(x, y))
			} else {
				c = palette.NearestIn(unpremultiply(rgba.Pix[off:off+4]), colors)
			}
			s.Set(x, y, c)
		}
	}
	return s
}

// unpremultiply recovers straight color from premultiplied RGBA bytes
func unpremultiply(p []uint8) color.Color {
	a := uint32(p[3])
	if a == 0xff || a == 0 {
		return color.RGBA{p[0], p[1], p[2], 0xff}
	}
	return color.RGBA{
		R: uint8(min(uint32(p[0])*0xff/a, 0xff)),
		G: uint8(min(uint32(p[1])*0xff/a, 0xff)),
		B: uint8(min(uint32(p[2])*0xff/a, 0xff)),
		A: 0xff,
	}
}

// targetSize resolves requested dimensions against the source aspect ratio
func targetSize(srcW, srcH, w, h int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	switch {
	case w <= 0 && h <= 0:
		return srcW, srcH
	case h <= 0:
		return w, max(1, (w*srcH+srcW/2)/srcW)
	case w <= 0:
		return max(1, (h*srcW+srcH/2)/srcH), h
	}
	return w, h
}
