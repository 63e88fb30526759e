package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/taigrr/prism/pkg/models"
	"github.com/taigrr/prism/pkg/render"
	"github.com/taigrr/prism/pkg/scene"
)

func newSpinCmd() *cobra.Command {
	var (
		outDir  string
		frames  int
		degrees float64
		axis    string
		ease    bool
		scale   int
		angles  viewAngles
	)

	cmd := &cobra.Command{
		Use:   "spin <scene.yaml>",
		Short: "Render a turntable of PNG frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("frames %d must be at least 1", frames)
			}
			m, err := loadModel(args[0])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}

			total := degrees * math.Pi / 180
			turns := linearAngles(frames, total)
			if ease {
				turns = easedAngles(frames, total)
			}

			bar := progressbar.Default(int64(frames), "rendering frames")
			var stats render.DrawStats
			for i, turn := range turns {
				v := angles.view(m)
				if err := spinView(v, axis, turn); err != nil {
					return err
				}
				path := filepath.Join(outDir, fmt.Sprintf("frame%04d.png", i))
				s, err := renderPNG(m, v, scale, path)
				if err != nil {
					return err
				}
				stats.TrianglesDrawn += s.TrianglesDrawn
				stats.TrianglesCulled += s.TrianglesCulled
				bar.Add(1)
			}
			bar.Finish()

			slog.Info("spin complete",
				"frames", frames,
				"dir", outDir,
				"triangles", stats.TrianglesDrawn,
				"culled", stats.TrianglesCulled,
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "frames", "Output directory")
	cmd.Flags().IntVarP(&frames, "frames", "n", 36, "Number of frames")
	cmd.Flags().Float64Var(&degrees, "degrees", 360, "Total rotation")
	cmd.Flags().StringVar(&axis, "axis", "y", "Rotation axis: x, y or z")
	cmd.Flags().BoolVar(&ease, "ease", false, "Ease the rotation with a spring instead of a constant speed")
	cmd.Flags().IntVar(&scale, "scale", 1, "Upscale each frame by this integer factor")
	angles.register(cmd)
	return cmd
}

// spinView adds turn radians about axis to v.
func spinView(v *render.View, axis string, turn float64) error {
	switch axis {
	case "x":
		v.Rotate(turn, 0, 0)
	case "y":
		v.Rotate(0, turn, 0)
	case "z":
		v.Rotate(0, 0, turn)
	default:
		return fmt.Errorf("unknown axis %q (want x, y or z)", axis)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <scene.yaml>",
		Short: "Write a scene's triangles to a .glb file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModel(args[0])
			if err != nil {
				return err
			}
			n, err := exportScene(m, output)
			if err != nil {
				return err
			}
			slog.Info("exported", "output", output, "triangles", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "scene.glb", "Output .glb path")
	return cmd
}

// exportScene writes every triangle of m to path and reports how many.
func exportScene(m *scene.Model, path string) (int, error) {
	tl := m.Triangles()
	if err := models.SaveGLB(path, tl); err != nil {
		return 0, err
	}
	return tl.Len(), nil
}
