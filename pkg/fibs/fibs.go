// Package fibs converts FIBS "board:" strings to and from engine boards.
//
// The 26 board fields use the same absolute numbering as engine.Board:
// fields 1-24 are points, field 0 is the bar of the side moving from 1 to 24
// and field 25 the bar of the side moving from 24 to 1. Positive counts are
// your chequers, negative counts your opponent's.
// See http://www.fibs.com/fibs_interface.html#board_state
package fibs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/bglogic/pkg/engine"
	"github.com/yourusername/bglogic/pkg/game"
)

// minFields is the number of fields up to and including the turn.
const minFields = 32

// Board is a parsed FIBS board string.
type Board struct {
	Player1      string  // your name
	Player2      string  // opponent's name
	MatchLength  int     // 0 = unlimited
	Score1       int     // your score
	Score2       int     // opponent's score
	Points       [26]int // signed chequer counts
	Turn         int     // 1 = you, -1 = opponent
	Dice         [2]int  // your dice, 0,0 if not rolled
	OppDice      [2]int  // opponent's dice
	Cube         int
	CanDouble    bool
	OppCanDouble bool
	Doubled      bool
	Color        int // 1 or -1
	Direction    int // 1 = you move 1 to 24, -1 = you move 24 to 1
}

var ErrFormat = errors.New("invalid FIBS board")

// Parse reads a FIBS board string. The "board:" prefix is optional.
func Parse(s string) (*Board, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "board:")

	parts := strings.Split(s, ":")
	if len(parts) < minFields {
		return nil, fmt.Errorf("%w: expected at least %d fields, got %d", ErrFormat, minFields, len(parts))
	}

	var firstErr error
	num := func(i int) int {
		if i >= len(parts) {
			return 0
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%w: field %d: %q", ErrFormat, i, parts[i])
		}
		return n
	}
	flag := func(i int) bool {
		return i < len(parts) && parts[i] == "1"
	}

	fb := &Board{
		Player1:     parts[0],
		Player2:     parts[1],
		MatchLength: num(2),
		Score1:      num(3),
		Score2:      num(4),
		Turn:        num(31),
		Direction:   1,
	}
	for i := range fb.Points {
		fb.Points[i] = num(5 + i)
	}

	if len(parts) > 35 {
		fb.Dice = [2]int{num(32), num(33)}
		fb.OppDice = [2]int{num(34), num(35)}
	}
	if len(parts) > 36 {
		fb.Cube = num(36)
	}
	fb.CanDouble = flag(37)
	fb.OppCanDouble = flag(38)
	fb.Doubled = flag(39)
	if len(parts) > 40 {
		fb.Color = num(40)
	}
	if len(parts) > 41 {
		fb.Direction = num(41)
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if fb.Direction != 1 && fb.Direction != -1 {
		return nil, fmt.Errorf("%w: direction %d", ErrFormat, fb.Direction)
	}
	return fb, nil
}

// Position is a FIBS board translated for the engine.
type Position struct {
	Board engine.Board
	You   engine.Player
	Turn  engine.Player
	Dice  game.Dice
}

// Position converts fb. Chequers missing from the board are in the trays.
func (fb *Board) Position() (Position, error) {
	you := engine.Black
	if fb.Direction < 0 {
		you = engine.White
	}
	opp := you.Switch()

	var pos Position
	var total [2]int
	for i, n := range fb.Points {
		side, count := you, n
		if n < 0 {
			side, count = opp, -n
		}
		if count == 0 {
			continue
		}
		if count > engine.NumChequers {
			return Position{}, fmt.Errorf("%w: %d chequers on field %d", ErrFormat, count, i)
		}

		p := engine.Position(i)
		switch {
		case p.IsPoint():
			pos.Board.SetPoint(p, engine.Point{Owner: side, Count: uint8(count)})
		case (p == 0) == (side == engine.Black):
			pos.Board.SetBar(side, uint8(count))
		default:
			return Position{}, fmt.Errorf("%w: %s chequers on the other bar", ErrFormat, side)
		}
		total[side] += count
	}
	for _, side := range []engine.Player{engine.Black, engine.White} {
		if total[side] > engine.NumChequers {
			return Position{}, fmt.Errorf("%w: %s has %d chequers", ErrFormat, side, total[side])
		}
		pos.Board.SetOff(side, uint8(engine.NumChequers-total[side]))
	}
	if err := pos.Board.Check(); err != nil {
		return Position{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	pos.You = you
	pos.Turn = you
	pos.Dice = game.Dice(fb.Dice)
	if fb.Turn < 0 {
		pos.Turn = opp
		pos.Dice = game.Dice(fb.OppDice)
	}
	return pos, nil
}

// FromPosition builds a FIBS board with you as Player1.
func FromPosition(pos Position, you, opponent string) *Board {
	fb := &Board{
		Player1:      you,
		Player2:      opponent,
		Turn:         1,
		Cube:         1,
		CanDouble:    true,
		OppCanDouble: true,
		Color:        1,
		Direction:    1,
	}
	if pos.You == engine.White {
		fb.Color = -1
		fb.Direction = -1
	}

	sign := func(side engine.Player) int {
		if side == pos.You {
			return 1
		}
		return -1
	}
	for i := engine.Position(1); i <= engine.NumPoints; i++ {
		if pt := pos.Board.At(i); !pt.Empty() {
			fb.Points[i] = sign(pt.Owner) * int(pt.Count)
		}
	}
	fb.Points[0] = sign(engine.Black) * int(pos.Board.Bar(engine.Black))
	fb.Points[25] = sign(engine.White) * int(pos.Board.Bar(engine.White))

	if pos.Turn == pos.You {
		fb.Dice = pos.Dice
	} else {
		fb.Turn = -1
		fb.OppDice = pos.Dice
	}
	return fb
}

// String writes fb in FIBS board format.
func (fb *Board) String() string {
	b01 := func(v bool) string {
		if v {
			return "1"
		}
		return "0"
	}

	fields := []string{
		"board",
		fb.Player1,
		fb.Player2,
		strconv.Itoa(fb.MatchLength),
		strconv.Itoa(fb.Score1),
		strconv.Itoa(fb.Score2),
	}
	for _, n := range fb.Points {
		fields = append(fields, strconv.Itoa(n))
	}
	fields = append(fields,
		strconv.Itoa(fb.Turn),
		strconv.Itoa(fb.Dice[0]), strconv.Itoa(fb.Dice[1]),
		strconv.Itoa(fb.OppDice[0]), strconv.Itoa(fb.OppDice[1]),
		strconv.Itoa(fb.Cube),
		b01(fb.CanDouble), b01(fb.OppCanDouble), b01(fb.Doubled),
		strconv.Itoa(fb.Color),
		strconv.Itoa(fb.Direction),
	)
	return strings.Join(fields, ":")
}

// FormatMove writes m, played by side, in FIBS absolute numbering.
func FormatMove(m engine.Move, side engine.Player) string {
	abs := func(p engine.Position) string {
		if side == engine.White {
			p = engine.Off - p
		}
		return strconv.Itoa(int(p))
	}

	parts := make([]string, len(m))
	for i, s := range m {
		switch s.Kind {
		case engine.KindEnter:
			parts[i] = "bar-" + abs(s.To)
		case engine.KindBearOff:
			parts[i] = abs(s.From) + "-off"
		default:
			parts[i] = abs(s.From) + "-" + abs(s.To)
		}
	}
	return strings.Join(parts, " ")
}
