package trek

// Key identifies a keyboard key. The values of the provided constants match the names ebiten gives its keys
// (ebiten.KeyW.String() == "W"), so ebiten keys can be converted with Key(k.String()).
type Key string

const (
	KeyW Key = "W"
	KeyA Key = "A"
	KeyS Key = "S"
	KeyD Key = "D"
)

// AxisWeight is the contribution a single held key makes to the input axes.
type AxisWeight struct {
	Forward float32
	Turn    float32
}

// Axes is the pair of input axes derived from the set of held keys.
// Forward moves the actor along its facing, and Turn yaws it about WorldUp. The world is right-handed, so a positive
// Turn swings the actor's nose from +Z towards +X, which is to its left.
type Axes struct {
	Forward float32
	Turn    float32
}

// KeyBindings maps keys to the weights they add to the input axes while held. Keys that aren't bound weigh nothing.
type KeyBindings map[Key]AxisWeight

// DefaultKeyBindings returns the WASD bindings: W and S move forwards and backwards, while A and D turn left and right.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		KeyW: {Forward: 1},
		KeyS: {Forward: -1},
		KeyA: {Turn: 1},
		KeyD: {Turn: -1},
	}
}

// Keys returns the bound keys.
func (kb KeyBindings) Keys() []Key {
	keys := make([]Key, 0, len(kb))
	for k := range kb {
		keys = append(keys, k)
	}
	return keys
}

// heldKeys is the set of keys currently held down.
type heldKeys map[Key]bool

func (held heldKeys) set(key Key, down bool) {
	if down {
		held[key] = true
	} else {
		delete(held, key)
	}
}

// axes sums the weights of the held keys. Opposing keys cancel each other out.
func (held heldKeys) axes(bindings KeyBindings) Axes {
	axes := Axes{}
	for key := range held {
		w := bindings[key]
		axes.Forward += w.Forward
		axes.Turn += w.Turn
	}
	return axes
}
