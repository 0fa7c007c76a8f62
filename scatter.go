package trek

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ScatterOptions controls how Scatter places props.
type ScatterOptions struct {
	Count   int     // How many placements to make.
	MapSize float32 // The width of the (square, origin-centered) area to scatter over.

	// Offset keeps placements at least this far from the origin along both X and Z, clearing a cross through the middle.
	Offset float32
	// Margin keeps placements at least this far from the edges of the area.
	Margin float32

	MinScale, MaxScale float32

	Seed uint64
}

// DefaultScatterOptions returns options for 20,000 placements over a 200x200 area, 5 units clear of the center and 2 from the edges.
func DefaultScatterOptions() ScatterOptions {
	return ScatterOptions{
		Count:    20_000,
		MapSize:  200,
		Offset:   5,
		Margin:   2,
		MinScale: 2,
		MaxScale: 10,
		Seed:     1,
	}
}

// Placement is the position, uniform scale, and heading of a scattered prop.
type Placement struct {
	Position mgl32.Vec3
	Scale    float32
	Yaw      float32
}

// Matrix returns the Placement's transform, composed as translation * rotation * scale.
func (p Placement) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(p.Position.Elem()).
		Mul4(mgl32.HomogRotate3DY(p.Yaw)).
		Mul4(mgl32.Scale3D(p.Scale, p.Scale, p.Scale))
}

// Scatter places props randomly over an area, sitting on top of the ground. Positions that miss the ground are placed
// at a height of 0. ground can be nil. The same options always give the same placements.
func Scatter(options ScatterOptions, ground GroundQuery) []Placement {

	if options.Count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(options.Seed, options.Seed^0x9e3779b97f4a7c15))

	spread := math32.Max(options.MapSize/2-options.Margin-options.Offset, 0)

	coordinate := func() float32 {
		v := options.Offset + rng.Float32()*spread
		if rng.Float32() > 0.5 {
			return v
		}
		return -v
	}

	placements := make([]Placement, 0, options.Count)

	for i := 0; i < options.Count; i++ {

		x := coordinate()
		z := coordinate()

		y := float32(0)
		if ground != nil {
			if h, ok := ground.GroundHeight(x, z); ok {
				y = h
			}
		}

		placements = append(placements, Placement{
			Position: mgl32.Vec3{x, y, z},
			Scale:    options.MinScale + rng.Float32()*(options.MaxScale-options.MinScale),
			Yaw:      rng.Float32() * 2 * math32.Pi,
		})

	}

	return placements

}
