// Package terrain builds height-map terrain out of cube tiles.
package terrain

import (
	"time"

	"github.com/chewxy/math32"

	"scene-editor/internal/scene"
	"scene-editor/internal/selection"
)

// Options controls procedural height map generation.
// Width/Depth are in tiles; TileSize is the world size of one tile on X/Z.
// HeightScale is the maximum height of the terrain in world units.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type Options struct {
	Width       int
	Depth       int
	TileSize    float32
	HeightScale float32
	Origin      [3]float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a small 8x8 terrain.
func DefaultOptions() Options {
	return Options{
		Width:       8,
		Depth:       8,
		TileSize:    1.0,
		HeightScale: 3.0,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

const (
	minHeight  = 0.15
	rootHeight = 0.1
)

func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.TileSize <= 0 {
		o.TileSize = 1
	}
	if o.HeightScale <= minHeight {
		o.HeightScale = d.HeightScale
	}
	if o.Octaves <= 0 {
		o.Octaves = 1
	}
	if o.Frequency <= 0 {
		o.Frequency = 0.05
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = d.Lacunarity
	}
	if o.Gain <= 0 {
		o.Gain = d.Gain
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Generate returns a terrain rooted at opts.Origin with ids starting at first:
// a flat root flagged HandleAsOne, one cube per tile parented to it and a
// generated collider proxy spanning the whole terrain. Tiles sit on the
// root's Y and are centered on it in XZ.
func Generate(opts Options, first selection.ObjectID) []scene.Object {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return nil
	}
	opts = opts.normalize()

	root := first
	extentX := float32(opts.Width) * opts.TileSize
	extentZ := float32(opts.Depth) * opts.TileSize
	ox, oy, oz := opts.Origin[0], opts.Origin[1], opts.Origin[2]

	objs := make([]scene.Object, 0, opts.Width*opts.Depth+2)
	objs = append(objs, scene.Object{
		ID:          root,
		Name:        "terrain",
		Kind:        "cube",
		Position:    opts.Origin,
		Scale:       [3]float32{extentX, rootHeight, extentZ},
		Color:       "#3f5a3a",
		HandleAsOne: true,
	})

	halfTile := opts.TileSize * 0.5
	startX := ox - extentX*0.5 + halfTile
	startZ := oz - extentZ*0.5 + halfTile
	next := first + 1
	tallest := float32(minHeight)
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(z)*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			height := minHeight + h*(opts.HeightScale-minHeight)
			if math32.IsNaN(height) || math32.IsInf(height, 0) || height <= 0 {
				height = minHeight
			}
			tallest = math32.Max(tallest, height)
			objs = append(objs, scene.Object{
				ID:       next,
				Kind:     "cube",
				Position: [3]float32{startX + float32(x)*opts.TileSize, oy + height*0.5, startZ + float32(z)*opts.TileSize},
				Scale:    [3]float32{opts.TileSize, height, opts.TileSize},
				Color:    "#6b8f4e",
				Parent:   root,
			})
			next++
		}
	}

	objs = append(objs, scene.Object{
		ID:        next,
		Name:      "terrain-collider",
		Kind:      "cube",
		Position:  [3]float32{ox, oy + tallest*0.5, oz},
		Scale:     [3]float32{extentX, tallest, extentZ},
		Parent:    root,
		Generated: true,
	})
	return objs
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude, freq := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] on a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	sx := smoothStep(x - float32(x0))
	sy := smoothStep(y - float32(y0))

	ix0 := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	ix1 := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	return float32(n&0x7fffffff) / 2147483647.0
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
