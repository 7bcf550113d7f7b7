package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/pixelbridge/svg2png/svgrender"
	"github.com/pixelbridge/svg2png/svgsize"
)

const defaultPreviewMax = 512

func newPreviewCmd(configPath *string) *cobra.Command {
	var (
		output      string
		max         int
		backendName string
	)

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a bounded preview PNG",
		Long: `Preview renders the document once at its intrinsic size and scales the
result into a square bounding box, the way an interactive preview pane
reuses a single render across zoom changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if backendName != "" {
				cfg.Backend = backendName
			}
			out := output
			if out == "" {
				out = replaceExt(args[0], ".preview.png")
			}
			return runPreview(cmd.Context(), cfg, args[0], out, max)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default: input with .preview.png extension)")
	cmd.Flags().IntVar(&max, "max", defaultPreviewMax, "bounding box edge in pixels")
	cmd.Flags().StringVar(&backendName, "backend", "", "rasterizer backend: oksvg, resvg or rsvg-convert")
	return cmd
}

func runPreview(ctx context.Context, cfg Config, path, output string, max int) error {
	logger := loggerFromContext(ctx)

	if max < 1 {
		return fmt.Errorf("invalid preview box %d", max)
	}
	svg, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	size, ok := svgsize.IntrinsicSize(svg)
	if !ok {
		return errors.New("document has no usable intrinsic size")
	}
	w, h := svgsize.TargetSize(size, 1.0)

	backend, err := backendFor(cfg.Backend, cfg.RsvgPath)
	if err != nil {
		return err
	}
	img, err := svgrender.RenderWith(ctx, backend, svg, uint32(w), uint32(h))
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	defer img.Release()

	full := img.RGBA()
	pw, ph := fitBox(w, h, max)
	if pw == w && ph == h {
		logger.Debug("preview fits unscaled", "size", fmt.Sprintf("%dx%d", w, h))
		return writePNG(output, full)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, pw, ph))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), full, full.Bounds(), xdraw.Src, nil)
	logger.Debug("preview downscaled", "from", fmt.Sprintf("%dx%d", w, h), "to", fmt.Sprintf("%dx%d", pw, ph))
	return writePNG(output, scaled)
}

// fitBox shrinks w x h to fit within a max x max box, preserving the
// aspect ratio and never scaling up.
func fitBox(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	scale := float64(max) / float64(w)
	if hs := float64(max) / float64(h); hs < scale {
		scale = hs
	}
	pw := int(math.Round(float64(w) * scale))
	ph := int(math.Round(float64(h) * scale))
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}
	return pw, ph
}
