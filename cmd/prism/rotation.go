package main

import (
	"github.com/charmbracelet/harmonica"
)

// RotationAxis tracks position and velocity for one rotation axis with spring decay
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis with harmonica spring for smooth velocity decay
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0 using spring
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// RotationState holds rotation with harmonica spring physics
type RotationState struct {
	Pitch, Yaw, Roll RotationAxis
	fps              int
}

func NewRotationState(fps int) *RotationState {
	return &RotationState{
		Pitch: NewRotationAxis(fps),
		Yaw:   NewRotationAxis(fps),
		Roll:  NewRotationAxis(fps),
		fps:   fps,
	}
}

func (r *RotationState) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
	r.Roll.Update()
}

func (r *RotationState) ApplyImpulse(pitch, yaw, roll float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
	r.Roll.Velocity += roll
}

// Reset stops all motion and returns to the unrotated view.
func (r *RotationState) Reset() {
	*r = *NewRotationState(r.fps)
}

// easedAngles returns n angles that travel from 0 toward total along a
// critically damped spring, so a turntable starts fast and settles. The
// last angle is exactly total.
func easedAngles(n int, total float64) []float64 {
	if n < 1 {
		return nil
	}
	spring := harmonica.NewSpring(harmonica.FPS(n), 6.0, 1.0)
	angles := make([]float64, n)
	var pos, vel float64
	for i := range n - 1 {
		angles[i] = pos
		pos, vel = spring.Update(pos, vel, total)
	}
	angles[n-1] = total
	return angles
}

// linearAngles returns n evenly spaced angles covering [0, total).
func linearAngles(n int, total float64) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = total * float64(i) / float64(n)
	}
	return angles
}
