package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelbridge/svg2png/svgsize"
)

func newInfoCmd() *cobra.Command {
	var zoom float64

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Print an SVG document's intrinsic and export sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svg, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			size, ok := svgsize.IntrinsicSize(svg)
			if !ok {
				cmd.Println("intrinsic size: unknown")
				return nil
			}
			cmd.Printf("intrinsic size: %g x %g px\n", size.Width, size.Height)
			w, h := svgsize.TargetSize(size, zoom)
			cmd.Printf("export size at %gx: %d x %d px\n", zoom, w, h)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&zoom, "zoom", "z", 1.0, "scale factor for the export size line")
	return cmd
}
