package trek

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeldKeyAxes(t *testing.T) {

	tests := []struct {
		name string
		held []Key
		want Axes
	}{
		{name: "nothing held", want: Axes{}},
		{name: "forward", held: []Key{KeyW}, want: Axes{Forward: 1}},
		{name: "backward", held: []Key{KeyS}, want: Axes{Forward: -1}},
		{name: "left", held: []Key{KeyA}, want: Axes{Turn: 1}},
		{name: "right", held: []Key{KeyD}, want: Axes{Turn: -1}},
		{name: "forward and backward cancel", held: []Key{KeyW, KeyS}, want: Axes{}},
		{name: "left and right cancel", held: []Key{KeyA, KeyD}, want: Axes{}},
		{name: "forward while turning", held: []Key{KeyW, KeyD}, want: Axes{Forward: 1, Turn: -1}},
		{name: "everything", held: []Key{KeyW, KeyA, KeyS, KeyD}, want: Axes{}},
		{name: "unbound keys weigh nothing", held: []Key{"Q", "Space", KeyW}, want: Axes{Forward: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := heldKeys{}
			for _, k := range tt.held {
				held.set(k, true)
			}
			assert.Equal(t, tt.want, held.axes(DefaultKeyBindings()))
		})
	}

}

func TestHeldKeyRelease(t *testing.T) {

	held := heldKeys{}
	held.set(KeyW, true)
	held.set(KeyD, true)
	held.set(KeyW, false)

	assert.Equal(t, Axes{Turn: -1}, held.axes(DefaultKeyBindings()))

	// Releasing a key that was never pressed changes nothing
	held.set(KeyS, false)
	assert.Equal(t, Axes{Turn: -1}, held.axes(DefaultKeyBindings()))

	// Pressing a held key again doesn't stack
	held.set(KeyD, true)
	assert.Equal(t, Axes{Turn: -1}, held.axes(DefaultKeyBindings()))

}

func TestKeyBindingsKeys(t *testing.T) {
	assert.ElementsMatch(t, []Key{KeyW, KeyA, KeyS, KeyD}, DefaultKeyBindings().Keys())
}
