package entity

// Key is one of the four direction keys.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// InputSource reports which direction keys are currently held.
type InputSource interface {
	Held(k Key) bool
}

// KeySet is an InputSource with a fixed set of held keys.
type KeySet map[Key]bool

// Held returns true if k is in the set.
func (s KeySet) Held(k Key) bool {
	return s[k]
}

// Keys returns a KeySet holding the given keys.
func Keys(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}
