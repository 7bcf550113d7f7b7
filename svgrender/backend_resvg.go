//go:build cgo

package svgrender

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	"github.com/xo/resvg"
)

// resvgBackend renders through the resvg engine.
type resvgBackend struct{}

// NewResvgBackend returns an in-process backend backed by the resvg
// engine. It is only available in cgo builds.
func NewResvgBackend() (Backend, error) { return resvgBackend{}, nil }

func (resvgBackend) Rasterize(_ context.Context, svg []byte, width, height int) (*image.RGBA, error) {
	rendered, err := resvg.Render(svg, resvg.WithWidth(width), resvg.WithHeight(height))
	if err != nil {
		return nil, fmt.Errorf("resvg: %w", err)
	}
	var img image.Image = rendered
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds() == image.Rect(0, 0, width, height) {
		return rgba, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}
