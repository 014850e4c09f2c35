// internal/actor/keys.go
package actor

// Keys is the held state of the four movement directions.
type Keys struct {
	Left, Right, Down, Up bool
}

// Direction resolves held keys to one step. Only one direction is taken
// per frame, in the order left, right, down, up.
func (k Keys) Direction() Direction {
	switch {
	case k.Left:
		return Left
	case k.Right:
		return Right
	case k.Down:
		return Down
	case k.Up:
		return Up
	}
	return None
}
