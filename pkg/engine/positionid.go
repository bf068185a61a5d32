package engine

import (
	"fmt"

	"github.com/yourusername/bglogic/internal/positionid"
)

// tanBoard converts b into gnubg's per-side table with onRoll as side 1.
func (b *Board) tanBoard(onRoll Player) positionid.TanBoard {
	var tb positionid.TanBoard
	for i, side := range [2]Player{White, Black} {
		v := b.View(side)
		for j := 0; j < NumPoints; j++ {
			if pt := v[NumPoints-j]; !pt.Empty() && pt.Owner == side {
				tb[i][j] = pt.Count
			}
		}
		tb[i][24] = v[Bar].Count
	}
	if onRoll == White {
		tb = positionid.Swap(tb)
	}
	return tb
}

// PositionID returns the gnubg position ID of b as seen by onRoll.
func (b *Board) PositionID(onRoll Player) string {
	return positionid.PositionID(b.tanBoard(onRoll))
}

// BoardFromPositionID decodes a gnubg position ID in which onRoll is the
// side to play. Chequers missing from the board are placed in the trays.
func BoardFromPositionID(id string, onRoll Player) (Board, error) {
	tb, err := positionid.FromPositionID(id)
	if err != nil {
		return Board{}, fmt.Errorf("position %q: %w", id, err)
	}
	if onRoll == White {
		tb = positionid.Swap(tb)
	}

	var b Board
	for i, side := range [2]Player{White, Black} {
		total := 0
		for j := 0; j < NumPoints; j++ {
			if n := tb[i][j]; n > 0 {
				b.SetPoint(absolute(side, Position(NumPoints-j)), Point{side, n})
				total += int(n)
			}
		}
		b.SetBar(side, tb[i][24])
		total += int(tb[i][24])
		b.SetOff(side, uint8(NumChequers-total))
	}
	if err := b.Check(); err != nil {
		return Board{}, fmt.Errorf("position %q: %w", id, err)
	}
	return b, nil
}
