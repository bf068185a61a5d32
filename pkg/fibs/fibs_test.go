package fibs

import (
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/bglogic/internal/testutil"
	"github.com/yourusername/bglogic/pkg/engine"
	"github.com/yourusername/bglogic/pkg/game"
)

// startBlack is the starting position with you moving from 1 to 24, on roll with 3-1.
const startBlack = "board:You:Opponent:5:2:3:" +
	"0:2:0:0:0:0:-5:0:-3:0:0:0:5:-5:0:0:0:3:0:5:0:0:0:0:-2:0:" +
	"1:3:1:0:0:1:1:1:0:1:1"

func TestParse(t *testing.T) {
	fb, err := Parse(startBlack)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fb.Player1 != "You" || fb.Player2 != "Opponent" {
		t.Errorf("players = %q, %q", fb.Player1, fb.Player2)
	}
	if fb.MatchLength != 5 || fb.Score1 != 2 || fb.Score2 != 3 {
		t.Errorf("match = %d %d-%d, want 5 2-3", fb.MatchLength, fb.Score1, fb.Score2)
	}
	if fb.Points[1] != 2 || fb.Points[24] != -2 {
		t.Errorf("Points[1], Points[24] = %d, %d; want 2, -2", fb.Points[1], fb.Points[24])
	}
	if fb.Turn != 1 || fb.Dice != [2]int{3, 1} {
		t.Errorf("turn %d dice %v", fb.Turn, fb.Dice)
	}
	if !fb.CanDouble || !fb.OppCanDouble || fb.Doubled {
		t.Errorf("cube flags = %v %v %v", fb.CanDouble, fb.OppCanDouble, fb.Doubled)
	}
	if fb.Color != 1 || fb.Direction != 1 {
		t.Errorf("color %d direction %d", fb.Color, fb.Direction)
	}
}

func TestParseMinimal(t *testing.T) {
	parts := make([]string, minFields)
	parts[0], parts[1], parts[2] = "P1", "P2", "7"
	for i := 3; i < minFields; i++ {
		parts[i] = "0"
	}
	parts[31] = "1"

	fb, err := Parse(strings.Join(parts, ":"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if fb.MatchLength != 7 || fb.Direction != 1 {
		t.Errorf("MatchLength %d Direction %d", fb.MatchLength, fb.Direction)
	}
}

func TestParseInvalid(t *testing.T) {
	bad := []string{
		"invalid:board",
		strings.Replace(startBlack, ":-5:", ":x:", 1),
		strings.TrimSuffix(startBlack, ":1:1") + ":1:0",
	}
	for _, s := range bad {
		if _, err := Parse(s); !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrFormat", s, err)
		}
	}
}

func TestPosition(t *testing.T) {
	fb, err := Parse(startBlack)
	if err != nil {
		t.Fatal(err)
	}
	pos, err := fb.Position()
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if pos.Board != engine.StartingBoard() {
		t.Errorf("board:\n%s", pos.Board.String())
	}
	testutil.AssertEqual(t, pos.You, engine.Black)
	testutil.AssertEqual(t, pos.Turn, engine.Black)
	testutil.AssertEqual(t, pos.Dice, game.Dice{3, 1})
}

func TestPositionRejectsBadLayouts(t *testing.T) {
	fb, err := Parse(startBlack)
	if err != nil {
		t.Fatal(err)
	}

	extra := *fb
	extra.Points[2] = 1 // sixteen chequers
	if _, err := extra.Position(); !errors.Is(err, ErrFormat) {
		t.Errorf("16 chequers: error = %v, want ErrFormat", err)
	}

	wrongBar := *fb
	wrongBar.Points[1] = 1
	wrongBar.Points[25] = 1 // your bar is field 0 when moving up
	if _, err := wrongBar.Position(); !errors.Is(err, ErrFormat) {
		t.Errorf("wrong bar: error = %v, want ErrFormat", err)
	}
}

func TestRoundTrip(t *testing.T) {
	b := engine.StartingBoard()
	if err := b.ApplyMove(engine.Move{engine.MoveSubmove(1, 3)}, engine.White); err != nil {
		t.Fatal(err)
	}
	if err := b.ApplyMove(engine.Move{engine.MoveSubmove(19, 22)}, engine.Black); err != nil {
		t.Fatal(err)
	}

	for _, you := range []engine.Player{engine.Black, engine.White} {
		want := Position{Board: b, You: you, Turn: engine.White, Dice: game.Dice{6, 4}}
		s := FromPosition(want, "me", "them").String()

		fb, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		got, err := fb.Position()
		if err != nil {
			t.Fatalf("Position(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("round trip as %s:\n got %+v\nwant %+v", you, got, want)
		}
	}
}

func TestFormatMove(t *testing.T) {
	m := engine.Move{engine.EnterSubmove(3), engine.MoveSubmove(1, 7), engine.BearOffSubmove(20)}
	if got, want := FormatMove(m, engine.Black), "bar-3 1-7 20-off"; got != want {
		t.Errorf("FormatMove(Black) = %q, want %q", got, want)
	}
	if got, want := FormatMove(m, engine.White), "bar-22 24-18 5-off"; got != want {
		t.Errorf("FormatMove(White) = %q, want %q", got, want)
	}
}
