package engine

import (
	"errors"
	"fmt"
)

// ErrIllegalSubmove is returned when applying a submove the rules forbid.
var ErrIllegalSubmove = errors.New("illegal submove")

// Apply validates s for side and, if legal, plays it on b. A lone opposing
// chequer on the destination is hit and sent to its owner's bar.
func (b *Board) Apply(s Submove, side Player) error {
	ok, err := b.Validate(s, side)
	if err != nil {
		return fmt.Errorf("%s: %w", s, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", s, ErrIllegalSubmove)
	}

	src := absolute(side, s.From)
	b.points[src].Count--
	if b.points[src].Count == 0 {
		b.points[src] = Point{}
	}

	if s.Kind == KindBearOff {
		b.off[side&1]++
		return nil
	}

	dst := absolute(side, s.To)
	if pt := b.points[dst]; !pt.Empty() && pt.Owner != side {
		// Validate let it through, so it is a blot.
		opp := side.Switch()
		b.points[dst] = Point{}
		b.SetBar(opp, b.Bar(opp)+1)
	}
	b.points[dst] = Point{Owner: side, Count: b.points[dst].Count + 1}
	return nil
}

// ApplyMove plays every submove of m in order. If any submove fails, b is
// left as it was and the error names the failing submove.
func (b *Board) ApplyMove(m Move, side Player) error {
	if len(m) == 0 {
		return ErrEmptyMove
	}
	next := *b
	for i, s := range m {
		if err := next.Apply(s, side); err != nil {
			return fmt.Errorf("submove %d: %w", i+1, err)
		}
	}
	*b = next
	return nil
}
