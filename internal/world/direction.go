package world

// Direction is a movement token. Only Up, Down, Left and Right move anything;
// any other value is accepted and answered with a "can not move" message.
type Direction string

const (
	Up    Direction = "UP"
	Down  Direction = "DOWN"
	Left  Direction = "LEFT"
	Right Direction = "RIGHT"
)

// Offset returns the row and column delta for the direction.
// ok is false for tokens that do not name a direction.
func (d Direction) Offset() (dRow, dCol int, ok bool) {
	switch d {
	case Up:
		return -1, 0, true
	case Down:
		return 1, 0, true
	case Left:
		return 0, -1, true
	case Right:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}
