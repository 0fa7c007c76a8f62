// Package colors holds the palette trek's examples draw with, as image/color values ready to hand to ebiten.
package colors

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Sky is the color behind the scene.
func Sky() color.RGBA {
	return color.RGBA{60, 70, 80, 255}
}

// White is plain white, for debug text.
func White() color.RGBA {
	return color.RGBA{255, 255, 255, 255}
}

// LightGray is used for secondary debug text.
func LightGray() color.RGBA {
	return color.RGBA{204, 204, 204, 255}
}

// Lowland is the color of the ground at its lowest.
func Lowland() color.RGBA {
	return color.RGBA{64, 110, 60, 255}
}

// Highland is the color of the ground at its highest.
func Highland() color.RGBA {
	return color.RGBA{190, 178, 140, 255}
}

// Pine is the color of scattered trees.
func Pine() color.RGBA {
	return color.RGBA{24, 72, 40, 255}
}

// Orange is the color of the player.
func Orange() color.RGBA {
	return color.RGBA{255, 128, 0, 255}
}

// Yellow marks the player's target point.
func Yellow() color.RGBA {
	return color.RGBA{255, 255, 0, 255}
}

// Lerp blends from a to b by t, which is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float32) color.RGBA {
	t = mgl32.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// Ground returns the color of the ground at a height, given as a fraction (0 to 1) of the way from its lowest to highest point.
func Ground(height float32) color.RGBA {
	return Lerp(Lowland(), Highland(), height)
}
