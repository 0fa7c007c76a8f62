package trek

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slopedTerrain rises linearly from MinHeight along its -X edge to MaxHeight along its +X edge.
func slopedTerrain(t testing.TB) *Terrain {
	terrain, err := NewTerrainFromFunc(func(u, v float32) float32 { return u }, DefaultTerrainOptions())
	require.NoError(t, err)
	return terrain
}

func slopedHeight(x float32) float32 {
	return 25 * (x + 100) / 200
}

func TestTerrainFromUniformImage(t *testing.T) {

	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 128
	}

	terrain, err := NewTerrainFromImage(img, DefaultTerrainOptions())
	require.NoError(t, err)

	want := float32(25 * 128.0 / 255)

	for _, p := range [][2]float32{{0, 0}, {-73.3, 12.1}, {99, -99}, {-42, 81.5}} {
		h, ok := terrain.GroundHeight(p[0], p[1])
		require.True(t, ok, "at %v", p)
		assert.InDelta(t, want, h, 0.01, "at %v", p)
	}

}

func TestTerrainImageOrientation(t *testing.T) {

	// White along the top of the image, black along the bottom
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 255})
	img.SetGray(1, 0, color.Gray{Y: 255})

	options := DefaultTerrainOptions()
	options.Subdivisions = 1

	terrain, err := NewTerrainFromImage(img, options)
	require.NoError(t, err)

	assert.InDelta(t, 25, terrain.Vertex(0, 1).Y(), 0.5)
	assert.InDelta(t, 25, terrain.Vertex(1, 1).Y(), 0.5)
	assert.InDelta(t, 0, terrain.Vertex(0, 0).Y(), 0.5)
	assert.InDelta(t, 0, terrain.Vertex(1, 0).Y(), 0.5)

	assert.Equal(t, mgl32.Vec3{-100, terrain.Vertex(0, 0).Y(), -100}, terrain.Vertex(0, 0))

	h, ok := terrain.GroundHeight(10, 50)
	require.True(t, ok)
	assert.InDelta(t, 18.75, h, 0.5)

}

func TestTerrainGroundHeight(t *testing.T) {

	terrain := slopedTerrain(t)

	tests := []struct {
		name string
		x, z float32
		ok   bool
	}{
		{name: "center", x: 0.3, z: 0.7, ok: true},
		{name: "low side", x: -97.2, z: 40.4, ok: true},
		{name: "high side", x: 88.8, z: -61.9, ok: true},
		{name: "within a cell's diagonal", x: -3.1, z: -3.3, ok: true},
		{name: "off the +X edge", x: 100.5, z: 0},
		{name: "off the -Z edge", x: 0, z: -150},
		{name: "far away", x: 1000, z: 1000},
		{name: "NaN x", x: math32.NaN(), z: 0},
		{name: "NaN z", x: 12, z: math32.NaN()},
		{name: "infinite", x: math32.Inf(-1), z: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := terrain.GroundHeight(tt.x, tt.z)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, slopedHeight(tt.x), h, 1e-3)
			} else {
				assert.Zero(t, h)
			}
		})
	}

}

func TestTerrainFromFuncClampsHeights(t *testing.T) {

	options := DefaultTerrainOptions()
	options.MinHeight = -5
	options.MaxHeight = 5

	high, err := NewTerrainFromFunc(func(u, v float32) float32 { return 3 }, options)
	require.NoError(t, err)

	low, err := NewTerrainFromFunc(func(u, v float32) float32 { return -3 }, options)
	require.NoError(t, err)

	h, ok := high.GroundHeight(12, 34)
	require.True(t, ok)
	assert.InDelta(t, 5, h, 1e-4)

	h, ok = low.GroundHeight(12, 34)
	require.True(t, ok)
	assert.InDelta(t, -5, h, 1e-4)

}

func TestTerrainPick(t *testing.T) {

	terrain := slopedTerrain(t)

	t.Run("straight down", func(t *testing.T) {

		hit, ok := terrain.Pick(mgl32.Vec3{10, 100, 20}, mgl32.Vec3{10, -100, 20})
		require.True(t, ok)

		assert.Equal(t, SurfaceID("ground"), hit.Surface)
		assert.InDelta(t, 10, hit.Position.X(), 1e-4)
		assert.InDelta(t, slopedHeight(10), hit.Position.Y(), 1e-3)
		assert.InDelta(t, 20, hit.Position.Z(), 1e-4)
		assert.InDelta(t, 100-slopedHeight(10), hit.Distance(), 1e-3)

		assert.Greater(t, hit.Normal.Y(), float32(0))
		assert.InDelta(t, math32.Atan(25.0/200), hit.Slope(), 1e-4)

	})

	t.Run("at an angle", func(t *testing.T) {

		hit, ok := terrain.Pick(mgl32.Vec3{-20, 60, -150}, mgl32.Vec3{30, -40, 150})
		require.True(t, ok)

		h, onMap := terrain.GroundHeight(hit.Position.X(), hit.Position.Z())
		require.True(t, onMap)
		assert.InDelta(t, h, hit.Position.Y(), 1e-2)

	})

	t.Run("closest hit wins", func(t *testing.T) {

		bumpy, err := NewTerrainFromFunc(func(u, v float32) float32 {
			if u > 0.45 && u < 0.55 {
				return 1
			}
			return 0
		}, DefaultTerrainOptions())
		require.NoError(t, err)

		// Skims low over the map from -X to +X, so it should stop at the near face of the ridge in the middle.
		hit, ok := bumpy.Pick(mgl32.Vec3{-90, 5, 3}, mgl32.Vec3{90, 5, 3})
		require.True(t, ok)
		assert.Less(t, hit.Position.X(), float32(0))

	})

	t.Run("from underneath", func(t *testing.T) {
		_, ok := terrain.Pick(mgl32.Vec3{10, -100, 20}, mgl32.Vec3{10, 100, 20})
		assert.False(t, ok)
	})

	t.Run("off the map", func(t *testing.T) {
		_, ok := terrain.Pick(mgl32.Vec3{500, 100, 0}, mgl32.Vec3{500, -100, 0})
		assert.False(t, ok)
	})

	t.Run("too short", func(t *testing.T) {
		_, ok := terrain.Pick(mgl32.Vec3{10, 100, 20}, mgl32.Vec3{10, 50, 20})
		assert.False(t, ok)
	})

}

func TestTerrainInvalidOptions(t *testing.T) {

	img := image.NewGray(image.Rect(0, 0, 4, 4))

	tests := []struct {
		name   string
		modify func(*TerrainOptions)
	}{
		{name: "zero size", modify: func(o *TerrainOptions) { o.Size = 0 }},
		{name: "negative size", modify: func(o *TerrainOptions) { o.Size = -10 }},
		{name: "no subdivisions", modify: func(o *TerrainOptions) { o.Subdivisions = 0 }},
		{name: "upside down heights", modify: func(o *TerrainOptions) { o.MinHeight, o.MaxHeight = 10, 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			options := DefaultTerrainOptions()
			tt.modify(&options)

			_, err := NewTerrainFromImage(img, options)
			assert.True(t, errors.Is(err, ErrInvalidTerrain), "got %v", err)

			_, err = NewTerrainFromFunc(func(u, v float32) float32 { return 0 }, options)
			assert.True(t, errors.Is(err, ErrInvalidTerrain), "got %v", err)

		})
	}

	t.Run("empty heightmap", func(t *testing.T) {
		_, err := NewTerrainFromImage(image.NewGray(image.Rect(0, 0, 0, 0)), DefaultTerrainOptions())
		assert.ErrorIs(t, err, ErrInvalidTerrain)
		_, err = NewTerrainFromImage(nil, DefaultTerrainOptions())
		assert.ErrorIs(t, err, ErrInvalidTerrain)
	})

}

func BenchmarkTerrainGroundHeight(b *testing.B) {

	terrain := slopedTerrain(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		terrain.GroundHeight(float32(i%199)-99.5, float32(i%97)-48.5)
	}

}

func BenchmarkTerrainPick(b *testing.B) {

	terrain := slopedTerrain(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		terrain.Pick(mgl32.Vec3{-20, 60, -150}, mgl32.Vec3{30, -40, 150})
	}

}
