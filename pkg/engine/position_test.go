package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/bglogic/internal/testutil"
)

func TestSwitch(t *testing.T) {
	for _, p := range []Player{Black, White} {
		if p.Switch() == p {
			t.Errorf("%s.Switch() = %s", p, p.Switch())
		}
		if got := p.Switch().Switch(); got != p {
			t.Errorf("%s.Switch().Switch() = %s, want %s", p, got, p)
		}
	}
}

func TestParsePlayer(t *testing.T) {
	tests := []struct {
		in   string
		want Player
	}{
		{"black", Black},
		{"B", Black},
		{"x", Black},
		{" White ", White},
		{"o", White},
		{"1", White},
	}
	for _, tc := range tests {
		got, err := ParsePlayer(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParsePlayer(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
	for _, in := range []string{"red", "", "2"} {
		if _, err := ParsePlayer(in); !errors.Is(err, ErrUnknownPlayer) {
			t.Errorf("ParsePlayer(%q) error = %v, want ErrUnknownPlayer", in, err)
		}
	}
}

func TestStartingBoard(t *testing.T) {
	b := StartingBoard()

	want := map[Position]Point{
		1:  {Black, 2},
		6:  {White, 5},
		8:  {White, 3},
		12: {Black, 5},
		13: {White, 5},
		17: {Black, 3},
		19: {Black, 5},
		24: {White, 2},
	}
	for p := Position(0); p < NumPositions; p++ {
		testutil.AssertEqual(t, b.At(p), want[p], "point %d", p)
	}

	for _, side := range []Player{Black, White} {
		if n := b.Chequers(side); n != NumChequers {
			t.Errorf("Chequers(%s) = %d, want %d", side, n, NumChequers)
		}
		if b.Bar(side) != 0 || b.Off(side) != 0 {
			t.Errorf("%s starts with bar=%d off=%d", side, b.Bar(side), b.Off(side))
		}
	}
	testutil.AssertNoError(t, b.Check())
}

func TestViewBlackIsIdentity(t *testing.T) {
	b := StartingBoard()
	v := b.View(Black)
	for p := Bar; p <= NumPoints; p++ {
		testutil.AssertEqual(t, v[p], b.At(p), "view index %d", p)
	}
}

func TestViewWhiteIsReversed(t *testing.T) {
	b := StartingBoard()
	b.SetBar(White, 1)
	b.SetPoint(24, Point{White, 1})
	b.SetOff(White, 2)
	b.SetBar(Black, 3)
	b.SetPoint(1, Point{})

	v := b.View(White)
	testutil.AssertEqual(t, v[Bar], Point{White, 1}, "white bar")
	testutil.AssertEqual(t, v[Off], Point{White, 2}, "white tray")
	testutil.AssertEqual(t, v[1], Point{White, 1})
	testutil.AssertEqual(t, v[19], Point{White, 5})
	testutil.AssertEqual(t, v[24], Point{})

	bv := b.View(Black)
	testutil.AssertEqual(t, bv[Bar], Point{Black, 3}, "black bar")
	testutil.AssertEqual(t, bv[Off], Point{}, "black tray")
}

func TestViewDoesNotChangeBoard(t *testing.T) {
	b := StartingBoard()
	before := b
	for i := 0; i < 3; i++ {
		v := b.View(White)
		v[1] = Point{Black, 9}
	}
	if b != before {
		t.Error("View modified the board")
	}
	if b.View(White) != b.View(White) {
		t.Error("View is not stable")
	}
}

func TestPositionOutOfRangePanics(t *testing.T) {
	b := StartingBoard()
	tests := map[string]func(){
		"At":          func() { b.At(26) },
		"SetPoint":    func() { b.SetPoint(30, Point{Black, 1}) },
		"SetPointBar": func() { b.SetPoint(Bar, Point{Black, 1}) },
		"Validate":    func() { _, _ = Validate(&b, MoveSubmove(40, 3), Black) },
	}
	for name, f := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", name)
				}
			}()
			f()
		})
	}
}

func TestCheck(t *testing.T) {
	b := StartingBoard()
	b.SetPoint(2, Point{Black, 1})
	if err := b.Check(); !errors.Is(err, ErrChequerTotal) {
		t.Errorf("Check() = %v, want ErrChequerTotal", err)
	}

	b = StartingBoard()
	b.points[0] = Point{White, 1}
	if err := b.Check(); !errors.Is(err, ErrBarOwner) {
		t.Errorf("Check() = %v, want ErrBarOwner", err)
	}

	// Trays count towards the total alongside the 26 slots.
	b = StartingBoard()
	b.SetPoint(1, Point{Black, 1})
	b.SetOff(Black, 1)
	if err := b.Check(); err != nil {
		t.Errorf("Check() with one chequer off = %v, want nil", err)
	}
	b.SetOff(Black, 2)
	if err := b.Check(); !errors.Is(err, ErrChequerTotal) {
		t.Errorf("Check() with 16 chequers counting the tray = %v, want ErrChequerTotal", err)
	}
	b.SetOff(Black, NumChequers+1)
	if err := b.Check(); !errors.Is(err, ErrOffOverflow) {
		t.Errorf("Check() = %v, want ErrOffOverflow", err)
	}

	var empty Board
	if err := empty.Check(); err == nil {
		t.Error("empty board should fail Check")
	}
}

func TestAllHome(t *testing.T) {
	start := StartingBoard()
	if start.AllHome(Black) {
		t.Error("starting board is not all home")
	}

	var b Board
	b.SetPoint(20, Point{Black, 10})
	b.SetPoint(24, Point{Black, 5})
	b.SetPoint(3, Point{White, 15})
	if !b.AllHome(Black) {
		t.Error("Black should be all home")
	}
	if !b.AllHome(White) {
		t.Error("White should be all home")
	}

	b.SetBar(Black, 1)
	b.SetPoint(24, Point{Black, 4})
	if b.AllHome(Black) {
		t.Error("a chequer on the bar is not home")
	}
}

func TestPipCountStart(t *testing.T) {
	b := StartingBoard()
	for _, side := range []Player{Black, White} {
		if got := b.PipCount(side); got != 167 {
			t.Errorf("PipCount(%s) = %d, want 167", side, got)
		}
	}
}

func TestPipCountBarAndTray(t *testing.T) {
	var b Board
	b.SetBar(Black, 2)              // 2 * 25
	b.SetPoint(24, Point{Black, 3}) // 3 * 1
	b.SetOff(Black, 10)
	b.SetPoint(1, Point{White, 4}) // White's last point: 4 * 1

	if got := b.PipCount(Black); got != 53 {
		t.Errorf("PipCount(Black) = %d, want 53", got)
	}
	if got := b.PipCount(White); got != 4 {
		t.Errorf("PipCount(White) = %d, want 4", got)
	}
}

func TestBoardString(t *testing.T) {
	s := StartingBoard()
	out := s.String()
	for _, want := range []string{"B2", "W5", "bar: B0 W0"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}
