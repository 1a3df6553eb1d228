package driver

// EventType identifies one kind of platform input event.
type EventType uint8

const (
	EventPointerDown EventType = iota + 1
	EventPointerMove
	EventPointerUp
	EventChar
	EventKeyDown
	EventResize
	EventClose
)

// Key is a virtual key code for non-character keys.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

// Event is one entry in the serialized input stream. Field usage depends
// on Type: X/Y for pointer events, Char for typed characters, Key for
// key-down, Width/Height for resize.
type Event struct {
	Type   EventType
	X, Y   int
	Char   rune
	Key    Key
	Width  int
	Height int
}
