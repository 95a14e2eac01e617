package ball

// Key identifies one of the keys the demo reacts to.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyR
	KeyE
	KeyF
	KeyD
	KeyC
	KeyEscape
	keyCount
)

var keyNames = [keyCount]string{
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyR:      "R",
	KeyE:      "E",
	KeyF:      "F",
	KeyD:      "D",
	KeyC:      "C",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Keys lists every key in polling order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeySet is a set of keys packed into a bitmask.
type KeySet uint16

// NewKeySet builds a set from the given keys.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Input is the keyboard snapshot for one frame. Held is level-triggered,
// Pressed is true only on the frame a key went down.
type Input struct {
	Held    KeySet
	Pressed KeySet
}

// Rand is the random source used by the color effect.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}
