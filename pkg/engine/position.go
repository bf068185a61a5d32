// Package engine validates and applies chequer movements on a backgammon board.
//
// The board is stored once, in absolute numbering where Black moves from
// point 1 towards point 24. Every rule is evaluated on a View, a throwaway
// copy reframed so that index 0 is the mover's bar and index 25 the mover's
// bear-off tray.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Position indexes the 26 slots of a board: the bar, the 24 points and the
// bear-off tray.
type Position uint8

const (
	Bar          Position = 0  // the mover's bar
	Off          Position = 25 // the mover's bear-off tray
	NumPoints             = 24
	NumPositions          = 26
	NumChequers           = 15
)

// IsPoint reports whether p is one of the 24 playable points.
func (p Position) IsPoint() bool {
	return p >= 1 && p <= NumPoints
}

func mustPosition(p Position) {
	if p >= NumPositions {
		panic(fmt.Sprintf("engine: position %d out of range [0,%d]", p, NumPositions-1))
	}
}

// Point is the stack of chequers on one slot. A zero Count means the slot is
// empty and Owner carries no meaning.
type Point struct {
	Owner Player
	Count uint8
}

// Empty reports whether no chequer is on the point.
func (p Point) Empty() bool {
	return p.Count == 0
}

// Blocks reports whether the point holds two or more of side's opponent's
// chequers.
func (p Point) Blocks(side Player) bool {
	return p.Count >= 2 && p.Owner != side
}

// View is a board reframed for one side: index 0 is that side's bar, 1-24
// are points in its direction of travel and 25 is its bear-off tray.
type View [NumPositions]Point

// Board holds the chequers of both sides in absolute numbering.
// Slot 0 holds Black's bar and slot 25 holds White's bar, which is where each
// side's reversal puts its own bar. The trays share those end slots with the
// opposing bar, so they are counted separately. Check covers the 26 slots
// and both trays together.
//
// The zero value is an empty board.
type Board struct {
	points [NumPositions]Point
	off    [2]uint8
}

var (
	ErrBarOwner      = errors.New("bar slot holds the wrong side")
	ErrChequerTotal  = errors.New("side does not have 15 chequers")
	ErrOffOverflow   = errors.New("too many chequers borne off")
	ErrInvalidLayout = errors.New("invalid board layout")
)

// StartingBoard returns the standard starting layout.
//
//	+13-14-15-16-17-18-----19-20-21-22-23-24-+
//	| W  .  .  .  B  . | | B  .  .  .  .  W |
//	| W  .  .  .  B  . | | B  .  .  .  .  W |
//	| W  .  .  .  B  . | | B  .  .  .  .  . |
//	| W  .  .  .  .  . | | B  .  .  .  .  . |
//	| W  .  .  .  .  . | | B  .  .  .  .  . |
//	|                  | |                  |
//	| B  .  .  .  .  . | | W  .  .  .  .  . |
//	| B  .  .  .  .  . | | W  .  .  .  .  . |
//	| B  .  .  .  W  . | | W  .  .  .  .  . |
//	| B  .  .  .  W  . | | W  .  .  .  .  B |
//	| B  .  .  .  W  . | | W  .  .  .  .  B |
//	+12-11-10--9--8--7------6--5--4--3--2--1-+
func StartingBoard() Board {
	var b Board
	b.points[1] = Point{Black, 2}
	b.points[6] = Point{White, 5}
	b.points[8] = Point{White, 3}
	b.points[12] = Point{Black, 5}
	b.points[13] = Point{White, 5}
	b.points[17] = Point{Black, 3}
	b.points[19] = Point{Black, 5}
	b.points[24] = Point{White, 2}
	return b
}

// absolute converts a position relative to side into the board's numbering.
func absolute(side Player, p Position) Position {
	if side == White {
		return Off - p
	}
	return p
}

// At returns the stack on an absolute point. At(0) and At(25) return the
// Black and White bars.
func (b *Board) At(p Position) Point {
	mustPosition(p)
	return b.points[p]
}

// SetPoint places a stack on an absolute point in 1-24. It is meant for
// building positions; it does not keep the 15-chequer total.
func (b *Board) SetPoint(p Position, pt Point) {
	mustPosition(p)
	if !p.IsPoint() {
		panic(fmt.Sprintf("engine: SetPoint on non-point slot %d", p))
	}
	if pt.Count == 0 {
		pt = Point{}
	}
	b.points[p] = pt
}

// SetBar sets the number of side's chequers on the bar.
func (b *Board) SetBar(side Player, n uint8) {
	i := absolute(side, Bar)
	if n == 0 {
		b.points[i] = Point{}
		return
	}
	b.points[i] = Point{side, n}
}

// SetOff sets the number of side's chequers borne off.
func (b *Board) SetOff(side Player, n uint8) {
	b.off[side&1] = n
}

// Bar returns the number of side's chequers on the bar.
func (b *Board) Bar(side Player) uint8 {
	return b.points[absolute(side, Bar)].Count
}

// Off returns the number of side's chequers borne off.
func (b *Board) Off(side Player) uint8 {
	return b.off[side&1]
}

// View returns the board reframed for side. The board is not modified.
func (b *Board) View(side Player) View {
	var v View
	for i := range v {
		v[i] = b.points[absolute(side, Position(i))]
	}
	v[Off] = Point{}
	if n := b.off[side&1]; n > 0 {
		v[Off] = Point{side, n}
	}
	return v
}

// Chequers counts every chequer side has on the points, the bar and the tray.
func (b *Board) Chequers(side Player) int {
	n := int(b.Bar(side)) + int(b.Off(side))
	for p := Position(1); p <= NumPoints; p++ {
		if pt := b.points[p]; !pt.Empty() && pt.Owner == side {
			n += int(pt.Count)
		}
	}
	return n
}

// AllHome reports whether every chequer side still has in play is on its
// last six points.
func (b *Board) AllHome(side Player) bool {
	v := b.View(side)
	for p := Bar; p < 19; p++ {
		if !v[p].Empty() && v[p].Owner == side {
			return false
		}
	}
	return true
}

// Check verifies the layout invariants: each bar slot holds only its own
// side and each side has exactly 15 chequers.
func (b *Board) Check() error {
	for _, side := range []Player{Black, White} {
		bar := b.points[absolute(side, Bar)]
		if !bar.Empty() && bar.Owner != side {
			return fmt.Errorf("%w: %s bar", ErrBarOwner, side)
		}
		if b.Off(side) > NumChequers {
			return fmt.Errorf("%w: %s has %d off", ErrOffOverflow, side, b.Off(side))
		}
		if n := b.Chequers(side); n != NumChequers {
			return fmt.Errorf("%w: %s has %d", ErrChequerTotal, side, n)
		}
	}
	return nil
}

// String draws the board from Black's side, point 1 at the bottom right.
func (b *Board) String() string {
	var sb strings.Builder
	row := func(from, to, step int) {
		for p := from; p != to+step; p += step {
			pt := b.points[p]
			switch {
			case pt.Empty():
				sb.WriteString("  .")
			case pt.Owner == Black:
				fmt.Fprintf(&sb, " B%d", pt.Count)
			default:
				fmt.Fprintf(&sb, " W%d", pt.Count)
			}
			if p == 18 || p == 7 {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" 13 14 15 16 17 18 | 19 20 21 22 23 24\n")
	row(13, 24, 1)
	row(12, 1, -1)
	sb.WriteString(" 12 11 10  9  8  7 |  6  5  4  3  2  1\n")
	fmt.Fprintf(&sb, "bar: B%d W%d  off: B%d W%d\n",
		b.Bar(Black), b.Bar(White), b.Off(Black), b.Off(White))
	return sb.String()
}
