package editor

// Event is a decoded, device independent input event.
type Event interface {
	event()
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Move moves the cursor Step positions. Extend grows the current selection
// instead of clearing it. Loop is accepted but moves never wrap around.
type Move struct {
	Dir    Direction
	Step   int
	Loop   bool
	Extend bool
}

type InsertChar struct {
	Text string
}

type (
	InsertNewline struct{}
	Backspace     struct{}
	SelectStart   struct{}
	SelectEnd     struct{}
	Save          struct{}
	DeleteLine    struct{}
	DuplicateLine struct{}
	Quit          struct{}
)

func (Move) event()          {}
func (InsertChar) event()    {}
func (InsertNewline) event() {}
func (Backspace) event()     {}
func (SelectStart) event()   {}
func (SelectEnd) event()     {}
func (Save) event()          {}
func (DeleteLine) event()    {}
func (DuplicateLine) event() {}
func (Quit) event()          {}
