package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixelbridge/svg2png/svgrender"
	"github.com/pixelbridge/svg2png/svgsize"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output  string  // output PNG path
	zoom    float64 // scale factor applied to the intrinsic size
	width   int     // explicit output width in pixels
	height  int     // explicit output height in pixels
	backend string  // rasterizer backend name
}

func newExportCmd(configPath *string) *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render an SVG file to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runExport(cmd.Context(), cfg, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG path (default: input with .png extension)")
	cmd.Flags().Float64VarP(&opts.zoom, "zoom", "z", 0, "scale factor applied to the intrinsic size")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "output width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "output height in pixels")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "rasterizer backend: oksvg, resvg or rsvg-convert")
	return cmd
}

func runExport(ctx context.Context, cfg Config, opts exportOpts, path string) error {
	logger := loggerFromContext(ctx)

	svg, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	width, height, err := exportSize(svg, opts, cfg.DefaultZoom)
	if err != nil {
		return err
	}

	name := opts.backend
	if name == "" {
		name = cfg.Backend
	}
	backend, err := backendFor(name, cfg.RsvgPath)
	if err != nil {
		return err
	}

	logger.Debug("rendering", "file", path, "width", width, "height", height, "backend", name)
	img, err := svgrender.RenderWith(ctx, backend, svg, uint32(width), uint32(height))
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	defer img.Release()

	out := opts.output
	if out == "" {
		out = replaceExt(path, ".png")
	}
	if err := writePNG(out, img.RGBA()); err != nil {
		return err
	}
	logger.Info("exported", "output", out, "size", fmt.Sprintf("%dx%d", width, height))
	return nil
}

// exportSize resolves the target pixel size from explicit flags, falling
// back to the intrinsic size multiplied by the zoom factor. A single
// explicit dimension keeps the document's aspect ratio.
func exportSize(svg []byte, opts exportOpts, defaultZoom float64) (int, int, error) {
	if opts.width > 0 && opts.height > 0 {
		return opts.width, opts.height, nil
	}
	size, ok := svgsize.IntrinsicSize(svg)
	if !ok {
		if opts.width > 0 || opts.height > 0 {
			return 0, 0, errors.New("document has no usable intrinsic size: pass both --width and --height")
		}
		return 0, 0, errors.New("document has no usable intrinsic size")
	}
	switch {
	case opts.width > 0:
		_, h := svgsize.TargetSize(size, float64(opts.width)/size.Width)
		return opts.width, h, nil
	case opts.height > 0:
		w, _ := svgsize.TargetSize(size, float64(opts.height)/size.Height)
		return w, opts.height, nil
	}
	zoom := opts.zoom
	if zoom == 0 {
		zoom = defaultZoom
	}
	if zoom < 0 {
		return 0, 0, fmt.Errorf("invalid zoom %v", zoom)
	}
	w, h := svgsize.TargetSize(size, zoom)
	return w, h, nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func writePNG(path string, img image.Image) error {
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return err
	}
	return os.WriteFile(path, b.Bytes(), 0o644)
}
