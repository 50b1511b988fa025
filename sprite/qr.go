package sprite

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/lixenwraith/halfblock/surface"
)

// QROptions control QR code generation
type QROptions struct {
	Level qrcode.RecoveryLevel

	// Border keeps the four-module quiet zone
	Border bool

	// Dark and Light module colors
	Dark  surface.Color
	Light surface.Color
}

// FromQR encodes content as a QR code, one pixel per module
func FromQR(content string, opt QROptions) (*Sprite, error) {
	if content == "" {
		return nil, fmt.Errorf("sprite: FromQR: empty content")
	}
	q, err := qrcode.New(content, opt.Level)
	if err != nil {
		return nil, fmt.Errorf("sprite: FromQR: %w", err)
	}
	q.DisableBorder = !opt.Border

	bitmap := q.Bitmap()
	s := New(len(bitmap), len(bitmap))
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				s.Set(x, y, opt.Dark)
			} else {
				s.Set(x, y, opt.Light)
			}
		}
	}
	return s, nil
}
