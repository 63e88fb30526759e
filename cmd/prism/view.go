package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/prism/pkg/render"
	"github.com/taigrr/prism/pkg/scene"
)

const viewHelp = `Controls:
  Mouse drag  - Rotate scene
  Scroll      - Zoom in/out
  W/S/A/D     - Pitch and yaw
  Q/E         - Roll left/right
  Space       - Random spin
  C           - Toggle backface culling
  R           - Reset view
  +/-         - Adjust zoom
  Esc         - Quit`

func newViewCmd() *cobra.Command {
	var targetFPS int

	cmd := &cobra.Command{
		Use:   "view <scene.yaml>",
		Short: "Preview a scene in the terminal",
		Long:  "Preview a scene in the terminal with spring-damped rotation.\n\n" + viewHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetFPS < 1 {
				return fmt.Errorf("fps %d must be at least 1", targetFPS)
			}
			m, err := loadModel(args[0])
			if err != nil {
				return err
			}
			return runViewer(cmd.Context(), m, targetFPS)
		},
	}
	cmd.Flags().IntVar(&targetFPS, "fps", 60, "Target FPS")
	return cmd
}

func runViewer(ctx context.Context, m *scene.Model, targetFPS int) error {
	// Anything written to stderr would tear the alternate screen.
	render.SetLogger(nil)

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	defer func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	termRenderer := render.NewTerminalRenderer(term, width, height)
	cv := render.NewCanvas(termRenderer.FramebufferSize())

	rotation := NewRotationState(targetFPS)
	view := render.NewView(m.Pivot())
	zoom := 1.0

	// Input state
	inputTorque := struct{ pitch, yaw, roll float64 }{}
	const torqueStrength = 3.0

	// Mouse state
	var mouseDown bool
	var lastMouseX, lastMouseY int

	ticker := time.NewTicker(time.Second / time.Duration(targetFPS))
	defer ticker.Stop()
	lastFrame := time.Now()
	events := term.Events()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				cv.Resize(termRenderer.FramebufferSize())

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c"):
					return nil
				case ev.MatchString("w", "up"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("q"):
					inputTorque.roll = -torqueStrength
				case ev.MatchString("e"):
					inputTorque.roll = torqueStrength
				case ev.MatchString("space"):
					rotation.ApplyImpulse(
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
					)
				case ev.MatchString("c"):
					m.Cull = !m.Cull
				case ev.MatchString("r"):
					rotation.Reset()
					zoom = 1
				case ev.MatchString("+", "="):
					zoom = math.Min(8, zoom*1.1)
				case ev.MatchString("-", "_"):
					zoom = math.Max(0.1, zoom/1.1)
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w", "up", "s", "down"):
					inputTorque.pitch = 0
				case ev.MatchString("a", "left", "d", "right"):
					inputTorque.yaw = 0
				case ev.MatchString("q", "e"):
					inputTorque.roll = 0
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					rotation.ApplyImpulse(float64(dy)*0.03, float64(dx)*0.03, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					zoom = math.Min(8, zoom*1.1)
				case uv.MouseWheelDown:
					zoom = math.Max(0.1, zoom/1.1)
				}
			}

		case now := <-ticker.C:
			dt := now.Sub(lastFrame).Seconds()
			lastFrame = now
			if dt > 0.1 {
				dt = 0.1
			}

			// Apply input torque and decay it (key release events unreliable)
			rotation.ApplyImpulse(
				inputTorque.pitch*dt,
				inputTorque.yaw*dt,
				inputTorque.roll*dt,
			)
			inputTorque.pitch *= 0.9
			inputTorque.yaw *= 0.9
			inputTorque.roll *= 0.9

			rotation.Update()
			view.SetRotation(rotation.Pitch.Position, rotation.Yaw.Position, rotation.Roll.Position)
			view.SetZoom(zoom)

			fit := m.Fit(cv.Width(), cv.Height())
			if _, err := m.Render(cv, fit.Mul(view.Matrix())); err != nil {
				return fmt.Errorf("render: %w", err)
			}

			termRenderer.Render(cv.Framebuffer())
			if err := termRenderer.Flush(); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
		}
	}
}
