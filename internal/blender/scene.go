// Package blender describes the render scene and drives Blender headless to produce the image.
package blender

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jinzhu/copier"
)

// Material is a Principled BSDF with a flat base color.
type Material struct {
	BaseColor [4]float64
	Metallic  float64
	Roughness float64
}

// Camera is a perspective camera held on Target by a track-to constraint.
type Camera struct {
	Lens      float64 // mm
	ClipStart float64
	ClipEnd   float64
	Location  mgl64.Vec3
	Target    mgl64.Vec3
}

// Light is a directional light; for a sun only its orientation matters, but Location is kept
// so the scene reads the same in the Blender UI.
type Light struct {
	Name     string
	Kind     string
	Energy   float64
	Location mgl64.Vec3
}

// Render holds engine and output settings.
type Render struct {
	Engine          string
	Samples         int
	Width           int
	Height          int
	Format          string
	FilmTransparent bool
	OutputPath      string
}

// Scene is everything the generated script builds: one mesh, its material, a camera, lights.
type Scene struct {
	MeshPath string
	Material Material
	Camera   Camera
	Lights   []Light
	Render   Render
}

// defaults holds every fixed scene parameter. NewScene deep-copies it, so it is never mutated.
var defaults = Scene{
	Material: Material{
		BaseColor: [4]float64{0.8, 0.8, 0.8, 1.0},
		Metallic:  0.3,
		Roughness: 0.4,
	},
	Camera: Camera{
		Lens:      50,
		ClipStart: 0.01,
		ClipEnd:   10000, // presets sit up to ~3m from the model
	},
	Lights: []Light{
		{Name: "KeyLight", Kind: "SUN", Energy: 2.0, Location: mgl64.Vec3{500, 500, 1000}},
		{Name: "FillLight", Kind: "SUN", Energy: 0.5, Location: mgl64.Vec3{-500, -500, 500}},
	},
	Render: Render{
		Engine:          "BLENDER_EEVEE",
		Samples:         8,
		Width:           1920,
		Height:          1080,
		Format:          "PNG",
		FilmTransparent: true,
	},
}

// NewScene returns the fixed scene for meshPath, rendered to outputPath from a camera at location
// looking at target.
func NewScene(meshPath, outputPath string, location, target mgl64.Vec3) (*Scene, error) {
	s := &Scene{}
	if err := copier.CopyWithOption(s, &defaults, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("blender: %w", err)
	}
	s.MeshPath = meshPath
	s.Render.OutputPath = outputPath
	s.Camera.Location = location
	s.Camera.Target = target
	return s, nil
}
