package engine

import "errors"

// ErrChequerDoesNotExist is returned when a submove starts from a slot that
// holds no chequer at all. It is distinct from an illegal move.
var ErrChequerDoesNotExist = errors.New("chequer does not exist")

// Validate reports whether side may play s on b. A rule violation returns
// false with a nil error. An empty origin returns ErrChequerDoesNotExist.
//
// Checks, in order:
//   - a chequer exists at the origin
//   - the chequer belongs to side
//   - side has nothing on the bar (Move and BearOff only)
//   - the destination is not blocked (Enter and Move)
//
// Bearing off does not require every chequer to be home here; pkg/game
// enforces that together with the dice.
//
// A position beyond the board panics.
func Validate(b *Board, s Submove, side Player) (bool, error) {
	mustPosition(s.From)
	mustPosition(s.To)
	if err := s.Check(); err != nil {
		return false, err
	}
	v := b.View(side)

	if v[s.From].Empty() {
		return false, ErrChequerDoesNotExist
	}

	switch s.Kind {
	case KindEnter:
		return !v[s.To].Blocks(side), nil
	case KindMove:
		return v[s.From].Owner == side &&
			v[Bar].Empty() &&
			!v[s.To].Blocks(side), nil
	default:
		return v[s.From].Owner == side &&
			v[Bar].Empty(), nil
	}
}

// Validate is shorthand for Validate(b, s, side).
func (b *Board) Validate(s Submove, side Player) (bool, error) {
	return Validate(b, s, side)
}
