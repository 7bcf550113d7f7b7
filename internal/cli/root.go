// Package cli implements the svg2png command-line interface.
//
// The commands are thin wrappers over the svgsize and svgrender packages:
// export renders an SVG to a PNG at a chosen scale or pixel size, info
// prints a document's intrinsic size, and preview produces a bounded
// thumbnail. All commands support --verbose for debug-level logging; the
// logger travels in the command context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g. "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the svg2png CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "svg2png",
		Short:        "svg2png renders SVG documents to PNG images",
		Long:         `svg2png converts SVG files to PNG, with control over the output scale or exact pixel size and a choice of rasterizer backends.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("svg2png %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to the TOML config file")

	root.AddCommand(newExportCmd(&configPath))
	root.AddCommand(newInfoCmd())
	root.AddCommand(newPreviewCmd(&configPath))

	return root.ExecuteContext(ctx)
}
