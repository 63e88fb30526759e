package render

import (
	"github.com/taigrr/prism/pkg/math3d"
)

// View is an orthographic viewpoint on a scene: the scene is rotated and
// zoomed about a pivot, then panned. Projection just drops z into the
// depth buffer, so there is no frustum or clipping.
type View struct {
	// Orientation (Euler angles in radians)
	Pitch float64 // Rotation around X axis
	Yaw   float64 // Rotation around Y axis
	Roll  float64 // Rotation around Z axis

	Zoom  float64     // Uniform scale about the pivot
	Pivot math3d.Vec3 // Point the view rotates about
	Pan   math3d.Vec3 // Offset applied after rotation

	// Cached matrix (computed on demand)
	matrix math3d.Mat4
	dirty  bool
}

// NewView creates an unrotated view about pivot.
func NewView(pivot math3d.Vec3) *View {
	return &View{
		Zoom:  1,
		Pivot: pivot,
		dirty: true,
	}
}

// SetRotation sets the view rotation (pitch, yaw, roll in radians).
func (v *View) SetRotation(pitch, yaw, roll float64) {
	v.Pitch = pitch
	v.Yaw = yaw
	v.Roll = roll
	v.dirty = true
}

// Rotate adds to the current rotation.
func (v *View) Rotate(dPitch, dYaw, dRoll float64) {
	v.SetRotation(v.Pitch+dPitch, v.Yaw+dYaw, v.Roll+dRoll)
}

// SetZoom sets the zoom factor. Non-positive values are ignored.
func (v *View) SetZoom(zoom float64) {
	if zoom <= 0 {
		return
	}
	v.Zoom = zoom
	v.dirty = true
}

// SetPivot sets the rotation pivot.
func (v *View) SetPivot(p math3d.Vec3) {
	v.Pivot = p
	v.dirty = true
}

// SetPan sets the post-rotation offset.
func (v *View) SetPan(p math3d.Vec3) {
	v.Pan = p
	v.dirty = true
}

// Matrix returns the view transform.
func (v *View) Matrix() math3d.Mat4 {
	if v.dirty {
		rot := math3d.RotateZ(v.Roll).
			Mul(math3d.RotateY(v.Yaw)).
			Mul(math3d.RotateX(v.Pitch))
		v.matrix = math3d.Translate(v.Pivot.Add(v.Pan)).
			Mul(math3d.ScaleUniform(v.Zoom)).
			Mul(rot).
			Mul(math3d.Translate(v.Pivot.Scale(-1)))
		v.dirty = false
	}
	return v.matrix
}
