// Package svgrender converts SVG source bytes into owned RGBA pixel
// buffers at an exact requested pixel size.
//
// The rasterization itself is delegated to a Backend; this package
// enforces the buffer contract (length == width*height*4, premultiplied
// alpha, row-major RGBA) and recovers every renderer failure into an
// ordinary error. Nothing panics across the call.
package svgrender

import (
	"context"
	"fmt"
	"image"
)

// MaxPixelBytes caps the size of a single output buffer. Larger requests
// fail as allocation errors instead of exhausting memory.
const MaxPixelBytes = 1 << 31

// Image is an owned RGBA pixel buffer: row-major, four bytes per pixel in
// R, G, B, A order with premultiplied alpha (the convention of Go's
// image.RGBA, kept consistent through to PNG encoding). The zero value is
// the canonical empty image, returned by failed renders and left behind by
// Release.
type Image struct {
	Pix    []uint8
	Width  uint32
	Height uint32
}

// Len returns the byte length of the pixel data, Width*Height*4 for a
// non-empty image.
func (img Image) Len() int { return len(img.Pix) }

// Empty reports whether img is the canonical empty image.
func (img Image) Empty() bool { return len(img.Pix) == 0 }

// Release drops the pixel data, resetting img to the canonical empty
// image. Releasing an already-released or zero image is a no-op.
func (img *Image) Release() {
	if img == nil {
		return
	}
	img.Pix = nil
	img.Width = 0
	img.Height = 0
}

// RGBA wraps the buffer in an image.RGBA sharing the same pixels, for
// encoding or drawing. The empty image yields nil.
func (img Image) RGBA() *image.RGBA {
	if img.Empty() {
		return nil
	}
	return &image.RGBA{
		Pix:    img.Pix,
		Stride: int(img.Width) * 4,
		Rect:   image.Rect(0, 0, int(img.Width), int(img.Height)),
	}
}

// Render rasterizes svg to exactly width x height pixels with the default
// in-process backend. On success the returned image is owned by the
// caller; on failure it is the canonical empty image and the error
// describes why. Render is safe for concurrent use; calls are independent.
//
// The document is stretched to the requested box. Callers wanting the
// intrinsic aspect ratio should derive the box from svgsize.TargetSize.
func Render(svg []byte, width, height uint32) (Image, error) {
	return RenderWith(context.Background(), DefaultBackend(), svg, width, height)
}

// RenderWith is Render with an explicit backend and context. The context
// is only consulted by backends that block outside the process.
func RenderWith(ctx context.Context, b Backend, svg []byte, width, height uint32) (Image, error) {
	if len(svg) == 0 {
		return Image{}, fmt.Errorf("empty svg input")
	}
	if width == 0 || height == 0 {
		return Image{}, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	if int64(width)*int64(height)*4 > MaxPixelBytes {
		return Image{}, fmt.Errorf("target size %dx%d exceeds the %d byte pixel budget", width, height, int64(MaxPixelBytes))
	}
	rgba, err := b.Rasterize(ctx, svg, int(width), int(height))
	if err != nil {
		return Image{}, err
	}
	want := int(width) * int(height) * 4
	if rgba == nil || len(rgba.Pix) != want || rgba.Stride != int(width)*4 {
		return Image{}, fmt.Errorf("renderer returned a malformed %dx%d buffer", width, height)
	}
	return Image{Pix: rgba.Pix, Width: width, Height: height}, nil
}
