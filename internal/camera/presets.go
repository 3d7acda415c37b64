package camera

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownPreset is returned by Lookup for names that are not one of the fixed presets.
var ErrUnknownPreset = errors.New("unknown camera preset")

// Preset is a named OpenSCAD camera: the point to look at, gimbal rotation in degrees and distance.
type Preset struct {
	Name     string
	Target   mgl64.Vec3
	Rotation mgl64.Vec3
	Distance float64
}

// Location returns the Blender camera location and look-at point for p.
func (p Preset) Location() (location, lookAt mgl64.Vec3) {
	return ToBlender(p.Target, p.Rotation, p.Distance)
}

// presets are the fixed views of the frame model, in the order they are listed to users.
// bb and seat_tube have their look-at Z nudged from the exported OpenSCAD view so the junction sits centered.
var presets = []Preset{
	{
		Name:     "full",
		Target:   mgl64.Vec3{-77.53, -257.19, 268.36},
		Rotation: mgl64.Vec3{82.30, 0, 161.20},
		Distance: 2903.56,
	},
	{
		Name:     "bb",
		Target:   mgl64.Vec3{-61.24, -212.17, 0}, // exported Z -26.17
		Rotation: mgl64.Vec3{80.90, 0, 164.70},
		Distance: 887.48,
	},
	{
		Name:     "seat_tube",
		Target:   mgl64.Vec3{-165.17, -207.23, 450}, // exported Z 480.09
		Rotation: mgl64.Vec3{92.80, 0, 178},
		Distance: 469.16,
	},
	{
		Name:     "dropout",
		Target:   mgl64.Vec3{-125.32, -360.70, 53.38},
		Rotation: mgl64.Vec3{80.20, 0, 43.60},
		Distance: 35.63,
	},
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
}

// Names returns the preset names in declaration order.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
