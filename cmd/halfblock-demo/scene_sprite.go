package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/skip2/go-qrcode"

	"github.com/lixenwraith/halfblock/engine"
	"github.com/lixenwraith/halfblock/sprite"
	"github.com/lixenwraith/halfblock/surface"
)

// qrScene shows the configured text as a QR code centered on the canvas
type qrScene struct {
	app     *app
	content string
	code    *sprite.Sprite
	err     error
}

func newQRScene(a *app, content string) *qrScene {
	return &qrScene{app: a, content: content}
}

func (s *qrScene) name() string { return "qr" }

func (s *qrScene) enter(e *engine.Engine) {
	if s.code != nil || s.err != nil {
		return
	}
	s.code, s.err = sprite.FromQR(s.content, sprite.QROptions{
		Level:  qrcode.Medium,
		Border: true,
		Dark:   surface.Black,
		Light:  s.app.color(surface.BrightWhite),
	})
	if s.err != nil {
		engine.Logger().Warn("qr encode failed", "error", s.err)
	}
}

func (s *qrScene) update(e *engine.Engine, dt float64) {
	e.Clear(s.app.color(surface.Blue))
	w, h := e.Width(), e.Height()

	switch {
	case s.err != nil:
		e.DrawString(w/2, h/2, s.err.Error(), s.app.color(surface.BrightRed), false, engine.AlignCenter)
	case s.code.Width > w || s.code.Height > h:
		msg := fmt.Sprintf("need %dx%d pixels", s.code.Width, s.code.Height)
		e.DrawString(w/2, h/2, msg, s.app.color(surface.BrightYellow), false, engine.AlignCenter)
	default:
		s.code.Blit(e, (w-s.code.Width)/2, (h-s.code.Height)/2)
	}
}

// imageScene shows a file or a generated test card, fit to the canvas
// 'd' toggles Floyd-Steinberg dithering
type imageScene struct {
	app    *app
	path   string
	src    image.Image
	pic    *sprite.Sprite
	dither bool
	err    error
}

func newImageScene(a *app, path string) *imageScene {
	return &imageScene{app: a, path: path}
}

func (s *imageScene) name() string { return "image" }

func (s *imageScene) enter(e *engine.Engine) {
	if s.src == nil && s.err == nil {
		if s.path == "" {
			s.src = testCard(96, 64)
		} else {
			s.src, s.err = loadImage(s.path)
			if s.err != nil {
				engine.Logger().Warn("image load failed", "path", s.path, "error", s.err)
			}
		}
	}
	s.convert(e)
}

func (s *imageScene) convert(e *engine.Engine) {
	if s.src == nil {
		return
	}
	b := s.src.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), e.Width(), e.Height())
	s.pic = sprite.FromImage(s.src, sprite.Options{
		Width:  w,
		Height: h,
		Colors: s.app.colors,
		Dither: s.dither,
	})
}

func (s *imageScene) update(e *engine.Engine, dt float64) {
	e.Clear(surface.Black)
	if s.err != nil {
		e.DrawString(e.Width()/2, e.Height()/2, s.err.Error(), s.app.color(surface.BrightRed), false, engine.AlignCenter)
		return
	}
	if s.pic != nil {
		s.pic.Blit(e, (e.Width()-s.pic.Width)/2, (e.Height()-s.pic.Height)/2)
	}
}

func (s *imageScene) key(e *engine.Engine, ev surface.Event) {
	if ev.Key == surface.KeyRune && ev.Rune == 'd' {
		s.dither = !s.dither
		s.convert(e)
		if s.dither {
			s.app.flash("dither on")
		} else {
			s.app.flash("dither off")
		}
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// fitSize scales srcW*srcH to the largest size inside maxW*maxH keeping the aspect ratio
func fitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := max(1, int(float64(srcW)*scale))
	h := max(1, int(float64(srcH)*scale))
	return min(w, maxW), min(h, maxH)
}

// testCard renders hue bars over a vertical brightness ramp with a transparent disc in the middle
func testCard(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	hole := float64(min(w, h)) / 6

	for y := 0; y < h; y++ {
		v := 1 - float64(y)/float64(h)
		for x := 0; x < w; x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) < hole {
				continue
			}
			r, g, b := hueRGB(float64(x) / float64(w))
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(r * v * 255),
				G: uint8(g * v * 255),
				B: uint8(b * v * 255),
				A: 255,
			})
		}
	}
	return img
}

// hueRGB converts a hue in [0,1) at full saturation and value
func hueRGB(hue float64) (r, g, b float64) {
	h := hue * 6
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	switch int(h) % 6 {
	case 0:
		return 1, x, 0
	case 1:
		return x, 1, 0
	case 2:
		return 0, 1, x
	case 3:
		return 0, x, 1
	case 4:
		return x, 0, 1
	default:
		return 1, 0, x
	}
}
