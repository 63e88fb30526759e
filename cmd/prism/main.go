// prism - software rasterizer for parametric scenes
// Draws boxes, spheres, tori, curves and glTF meshes described in a YAML
// scene file, to PNG or straight into the terminal.
//
// Commands:
//
//	render  - Render a scene to a PNG file
//	view    - Interactive terminal preview
//	spin    - Render a turntable of PNG frames
//	export  - Write a scene's triangles to a .glb file
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/prism/pkg/render"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "prism",
		Short: "Software rasterizer for parametric 3D scenes",
		Long: `prism turns a YAML scene of boxes, spheres, tori, curves and glTF
meshes into depth-tested, flat-colored pixels.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log draw statistics")

	root.AddCommand(
		newRenderCmd(),
		newViewCmd(),
		newSpinCmd(),
		newExportCmd(),
	)
	return root
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	render.SetLogger(logger)
}
