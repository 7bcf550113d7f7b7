package svgrender

import (
	"context"
	"image"
)

// Backend is the opaque SVG rasterization capability. Implementations
// parse the document and draw it stretched to exactly width x height
// pixels into an image.RGBA whose bounds start at the origin.
//
// Implementations must be safe for concurrent use.
type Backend interface {
	Rasterize(ctx context.Context, svg []byte, width, height int) (*image.RGBA, error)
}

// DefaultBackend returns the pure-Go in-process backend.
func DefaultBackend() Backend { return oksvgBackend{} }
