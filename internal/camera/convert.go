// Package camera converts OpenSCAD gimbal camera parameters into Blender world coordinates.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"
)

// internalRotation returns the rotation OpenSCAD keeps internally for a gimbal rotation
// given in degrees: (90-x, -y, -z), in radians.
func internalRotation(rotation mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.DegToRad(90 - rotation.X()),
		mgl64.DegToRad(-rotation.Y()),
		mgl64.DegToRad(-rotation.Z()),
	}
}

// ToBlender returns the world-space camera location for an OpenSCAD camera looking at target
// from distance, plus the look-at point (target itself).
//
// OpenSCAD's viewer places the eye at (0, -distance, 0), rotates the object by X, Y, Z and then
// translates it. The camera position in world space is found by undoing that chain: inverse Z,
// then inverse Y, then inverse X, then translate by target.
// Zero or negative distances and gimbal lock are not special-cased.
func ToBlender(target, rotation mgl64.Vec3, distance float64) (location, lookAt mgl64.Vec3) {
	r := internalRotation(rotation)
	inverse := mgl64.Rotate3DX(-r.X()).Mul3(mgl64.Rotate3DY(-r.Y())).Mul3(mgl64.Rotate3DZ(-r.Z()))
	eye := inverse.Mul3x1(mgl64.Vec3{0, -distance, 0})
	return target.Add(eye), target
}
