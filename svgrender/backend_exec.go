package svgrender

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os/exec"
	"strconv"
	"strings"
)

// ExecBackend rasterizes by invoking an rsvg-convert compatible
// executable, feeding the document on stdin and decoding the PNG written
// to stdout back into an RGBA buffer. This is the external-process export
// path; it needs no in-process rendering support but pays an encode/decode
// round trip per call.
type ExecBackend struct {
	// Path is the executable to run. Empty means "rsvg-convert" from $PATH.
	Path string
}

func (b ExecBackend) command() string {
	if b.Path != "" {
		return b.Path
	}
	return "rsvg-convert"
}

func (b ExecBackend) Rasterize(ctx context.Context, svg []byte, width, height int) (*image.RGBA, error) {
	cmd := exec.CommandContext(ctx, b.command(),
		"--format", "png",
		"--width", strconv.Itoa(width),
		"--height", strconv.Itoa(height),
	)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %s", b.command(), msg)
		}
		return nil, fmt.Errorf("%s: %w", b.command(), err)
	}
	decoded, err := png.Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("decode %s output: %w", b.command(), err)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	return rgba, nil
}
