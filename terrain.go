package trek

import (
	"errors"
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
)

// ErrInvalidTerrain is returned when a Terrain can't be built from the options or heightmap given.
var ErrInvalidTerrain = errors.New("invalid terrain")

// TerrainOptions controls the shape of a Terrain.
type TerrainOptions struct {
	Name         SurfaceID // The SurfaceID picks against the Terrain report.
	Size         float32   // The width and depth of the Terrain, in world units. The Terrain is centered on the origin.
	Subdivisions int       // How many cells the Terrain is split into along each side.
	MinHeight    float32   // The height of the darkest heightmap value.
	MaxHeight    float32   // The height of the brightest heightmap value.
}

// DefaultTerrainOptions returns a 200x200 unit "ground" with 16 subdivisions per side, ranging from 0 to 25 units high.
func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Name:         "ground",
		Size:         200,
		Subdivisions: 16,
		MinHeight:    0,
		MaxHeight:    25,
	}
}

func (options TerrainOptions) validate() error {
	if options.Size <= 0 {
		return fmt.Errorf("%w: size %v must be positive", ErrInvalidTerrain, options.Size)
	}
	if options.Subdivisions < 1 {
		return fmt.Errorf("%w: %d subdivisions; need at least 1", ErrInvalidTerrain, options.Subdivisions)
	}
	if options.MaxHeight < options.MinHeight {
		return fmt.Errorf("%w: max height %v is below min height %v", ErrInvalidTerrain, options.MaxHeight, options.MinHeight)
	}
	return nil
}

// Terrain is a square grid of triangles displaced by a heightmap. It answers ground height queries and ray picks,
// so it can serve as the GroundQuery of a Controller, and as the target of pointer picks.
type Terrain struct {
	options   TerrainOptions
	heights   []float32 // One height per vertex, row by row, rows running from -Z to +Z
	triangles []triangle
	bounds    aabb
}

// NewTerrainFromImage builds a Terrain from a heightmap image. The image is resampled to one pixel per vertex, and each
// pixel's luminance maps linearly from the options' MinHeight (black) to MaxHeight (white).
// The top row of the image lies along the Terrain's +Z edge, and the left column along its -X edge.
func NewTerrainFromImage(img image.Image, options TerrainOptions) (*Terrain, error) {

	if err := options.validate(); err != nil {
		return nil, err
	}

	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty heightmap", ErrInvalidTerrain)
	}

	count := options.Subdivisions + 1

	gray := image.NewGray(image.Rect(0, 0, count, count))
	draw.BiLinear.Scale(gray, gray.Bounds(), img, img.Bounds(), draw.Src, nil)

	return newTerrain(options, func(col, row int) float32 {
		return float32(gray.GrayAt(col, options.Subdivisions-row).Y) / 255
	}), nil

}

// NewTerrainFromFunc builds a Terrain from a height function. heightFunc is called once per vertex with u and v ranging
// from 0 to 1 along X and Z, and should return a value from 0 (MinHeight) to 1 (MaxHeight); other values are clamped.
func NewTerrainFromFunc(heightFunc func(u, v float32) float32, options TerrainOptions) (*Terrain, error) {

	if err := options.validate(); err != nil {
		return nil, err
	}

	sub := float32(options.Subdivisions)

	return newTerrain(options, func(col, row int) float32 {
		return mgl32.Clamp(heightFunc(float32(col)/sub, float32(row)/sub), 0, 1)
	}), nil

}

func newTerrain(options TerrainOptions, gradient func(col, row int) float32) *Terrain {

	count := options.Subdivisions + 1

	terrain := &Terrain{
		options: options,
		heights: make([]float32, count*count),
	}

	low, high := math32.Inf(1), math32.Inf(-1)

	for row := 0; row < count; row++ {
		for col := 0; col < count; col++ {
			h := options.MinHeight + (options.MaxHeight-options.MinHeight)*gradient(col, row)
			terrain.heights[row*count+col] = h
			low = math32.Min(low, h)
			high = math32.Max(high, h)
		}
	}

	half := options.Size / 2
	terrain.bounds = aabb{
		min: mgl32.Vec3{-half, low, -half},
		max: mgl32.Vec3{half, high, half},
	}

	terrain.triangles = make([]triangle, 0, options.Subdivisions*options.Subdivisions*2)

	// Both triangles of a cell wind so that their normals face up.
	for row := 0; row < options.Subdivisions; row++ {
		for col := 0; col < options.Subdivisions; col++ {
			terrain.triangles = append(terrain.triangles,
				newTriangle(terrain.Vertex(col, row), terrain.Vertex(col, row+1), terrain.Vertex(col+1, row)),
				newTriangle(terrain.Vertex(col+1, row), terrain.Vertex(col, row+1), terrain.Vertex(col+1, row+1)),
			)
		}
	}

	return terrain

}

// Surface returns the SurfaceID picks against the Terrain report.
func (terrain *Terrain) Surface() SurfaceID {
	return terrain.options.Name
}

// Options returns the options the Terrain was built with.
func (terrain *Terrain) Options() TerrainOptions {
	return terrain.options
}

// Subdivisions returns how many cells the Terrain has along each side.
func (terrain *Terrain) Subdivisions() int {
	return terrain.options.Subdivisions
}

// Vertex returns the world position of the grid vertex at the given column (along X) and row (along Z).
// Both range from 0 to Subdivisions(), inclusive.
func (terrain *Terrain) Vertex(col, row int) mgl32.Vec3 {
	cell := terrain.options.Size / float32(terrain.options.Subdivisions)
	half := terrain.options.Size / 2
	return mgl32.Vec3{
		-half + float32(col)*cell,
		terrain.heights[row*(terrain.options.Subdivisions+1)+col],
		-half + float32(row)*cell,
	}
}

// GroundHeight returns the height of the Terrain at the given horizontal position by casting a ray straight down onto
// it from just above its maximum height. The boolean is false if the position is off of the Terrain (or isn't a number).
func (terrain *Terrain) GroundHeight(x, z float32) (float32, bool) {

	half := terrain.options.Size / 2

	if math32.IsNaN(x) || math32.IsNaN(z) || x < -half || x > half || z < -half || z > half {
		return 0, false
	}

	cell := terrain.options.Size / float32(terrain.options.Subdivisions)
	last := terrain.options.Subdivisions - 1

	col := min(int(math32.Floor((x+half)/cell)), last)
	row := min(int(math32.Floor((z+half)/cell)), last)

	top := terrain.options.MaxHeight + 0.1
	from := mgl32.Vec3{x, top, z}
	to := mgl32.Vec3{x, top - (terrain.options.MaxHeight - terrain.options.MinHeight + 0.2), z}

	found := false
	height := float32(0)

	index := (row*terrain.options.Subdivisions + col) * 2
	for _, tri := range terrain.triangles[index : index+2] {
		if p, ok := tri.rayTest(from, to, false); ok && (!found || p.Y() > height) {
			height = p.Y()
			found = true
		}
	}

	return height, found

}

// Pick casts a ray running from -> to against the Terrain, returning the closest struck position.
// The boolean is false if the ray missed.
func (terrain *Terrain) Pick(from, to mgl32.Vec3) (RayHit, bool) {

	if !terrain.bounds.segmentHits(from, to) {
		return RayHit{}, false
	}

	var closest RayHit
	found := false

	for _, tri := range terrain.triangles {

		p, ok := tri.rayTest(from, to, false)
		if !ok {
			continue
		}

		hit := RayHit{
			Surface:  terrain.options.Name,
			Position: p,
			Normal:   tri.normal,
			from:     from,
		}

		if !found || hit.Distance() < closest.Distance() {
			closest = hit
			found = true
		}

	}

	return closest, found

}
