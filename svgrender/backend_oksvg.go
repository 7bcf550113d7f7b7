package svgrender

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// oksvgBackend rasterizes in-process with the srwiley oksvg/rasterx pair.
type oksvgBackend struct{}

// NewOksvgBackend returns the default pure-Go backend, named for symmetry
// with the other backend constructors.
func NewOksvgBackend() Backend { return oksvgBackend{} }

func (oksvgBackend) Rasterize(_ context.Context, svg []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return img, nil
}
