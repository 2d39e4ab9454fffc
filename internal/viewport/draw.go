package viewport

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/scene"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 16
)

var (
	defaultObjectColor = rl.NewColor(128, 128, 128, 255)
	selectedColor      = rl.NewColor(255, 160, 40, 255)
	activeColor        = rl.NewColor(255, 220, 90, 255)
	generatedColor     = rl.NewColor(90, 160, 220, 120)
)

// Draw renders the scene between BeginMode3D and EndMode3D. Call after
// ClearBackground and before the 2D overlay.
func (v *Viewport) Draw() {
	s := v.ed.Scene
	rl.BeginMode3D(toRaylib(s.Camera))
	if s.GridVisible {
		drawEditorGrid()
	}
	active, _ := v.ed.Selection.Active()
	for _, o := range s.Objects() {
		switch {
		case o.Generated:
			drawWires(o, generatedColor)
		case o.ID == active:
			drawSolid(o)
			drawWires(o, activeColor)
		case v.ed.Selection.Contains(o.ID):
			drawSolid(o)
			drawWires(o, selectedColor)
		default:
			drawSolid(o)
		}
	}
	rl.EndMode3D()
}

func drawSolid(o scene.Object) {
	b := o.Bounds()
	c, size := toVector(b.Center()), b.Size()
	col := parseColor(o.Color)
	switch o.Kind {
	case "sphere":
		rl.DrawSphereEx(c, size.X/2, sphereRings, sphereSlices, col)
	case "cylinder":
		base := rl.NewVector3(c.X, b.Min.Y, c.Z)
		rl.DrawCylinder(base, size.X/2, size.X/2, size.Y, cylinderSlices, col)
	default:
		rl.DrawCube(c, size.X, size.Y, size.Z, col)
	}
}

// drawWires outlines the object's bounds; selection reads the same boxes.
func drawWires(o scene.Object, col rl.Color) {
	b := o.Bounds()
	rl.DrawBoundingBox(rl.NewBoundingBox(toVector(b.Min), toVector(b.Max)), col)
}

// parseColor reads "#rrggbb" or "#rrggbbaa". Anything else is the default grey.
func parseColor(s string) rl.Color {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return defaultObjectColor
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return defaultObjectColor
	}
	return rl.GetColor(uint(n))
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	axes := [3]struct {
		dir rl.Vector3
		col rl.Color
	}{
		{rl.NewVector3(1, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha)},
		{rl.NewVector3(0, 1, 0), rl.NewColor(80, 220, 80, axisLineAlpha)},
		{rl.NewVector3(0, 0, 1), rl.NewColor(80, 80, 220, axisLineAlpha)},
	}
	for _, a := range axes {
		rl.DrawLine3D(rl.Vector3Scale(a.dir, -gridExtent), rl.Vector3Scale(a.dir, gridExtent), a.col)
	}
}
