// Package transcript reads and writes plain-text game records in the style
// of Jellyfish MAT files:
//
//	; [Player 1 "alice"]
//	; [Player 2 "bob"]
//	; [First "black"]
//
//	 1) 31: 17/20 19/20             64: 1/7 7/11
//	 2) 66:                         52: 12/17 12/14
//
// Each column holds one side's turn: its roll, then its move in that side's
// own numbering. A roll with no move is a pass.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/bglogic/pkg/engine"
	"github.com/yourusername/bglogic/pkg/game"
)

// Transcript is the record of one game from the starting layout.
type Transcript struct {
	Player1 string // plays Black
	Player2 string // plays White
	First   engine.Player
	Turns   []game.Turn
}

var (
	tagRE  = regexp.MustCompile(`^;\s*\[(\w+(?: \d)?)\s+("(?:[^"\\]|\\.)*")\]$`)
	lineRE = regexp.MustCompile(`^\s*(\d+)\)(.*)$`)
	rollRE = regexp.MustCompile(`^(\d\d):$`)
)

// columnWidth is the width of the first side's column.
const columnWidth = 28

var ErrFormat = errors.New("invalid transcript")

// FromGame records the turns played in g.
func FromGame(g *game.Game, player1, player2 string) *Transcript {
	t := &Transcript{
		Player1: player1,
		Player2: player2,
		First:   g.Turn,
		Turns:   g.History(),
	}
	if len(t.Turns) > 0 {
		t.First = t.Turns[0].Side
	}
	return t
}

// Write writes t.
func Write(w io.Writer, t *Transcript) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "; [Player 1 %q]\n", t.Player1)
	fmt.Fprintf(bw, "; [Player 2 %q]\n", t.Player2)
	fmt.Fprintf(bw, "; [First %q]\n\n", t.First.String())

	for i := 0; i < len(t.Turns); i += 2 {
		left := formatTurn(t.Turns[i])
		line := fmt.Sprintf("%2d) %s", i/2+1, left)
		if i+1 < len(t.Turns) {
			line = fmt.Sprintf("%2d) %-*s%s", i/2+1, columnWidth, left, formatTurn(t.Turns[i+1]))
		}
		fmt.Fprintln(bw, strings.TrimRight(line, " "))
	}
	return bw.Flush()
}

func formatTurn(turn game.Turn) string {
	if len(turn.Move) == 0 {
		return turn.Dice.String() + ":"
	}
	return turn.Dice.String() + ": " + turn.Move.String()
}

// Read parses a transcript written by Write.
func Read(r io.Reader) (*Transcript, error) {
	t := &Transcript{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ";") {
			if !strings.HasPrefix(strings.TrimSpace(line[1:]), "[") {
				continue // comment
			}
			m := tagRE.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("%w: line %d: malformed tag %q", ErrFormat, lineNo, line)
			}
			value, err := strconv.Unquote(m[2])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: tag value %s", ErrFormat, lineNo, m[2])
			}
			switch strings.ToLower(m[1]) {
			case "player 1", "player1":
				t.Player1 = value
			case "player 2", "player2":
				t.Player2 = value
			case "first":
				p, err := engine.ParsePlayer(value)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, lineNo, err)
				}
				t.First = p
			}
			continue
		}

		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrFormat, lineNo, line)
		}
		if n, _ := strconv.Atoi(m[1]); n != len(t.Turns)/2+1 {
			return nil, fmt.Errorf("%w: line %d: turn %d out of order", ErrFormat, lineNo, n)
		}
		turns, err := parseColumns(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, lineNo, err)
		}
		t.Turns = append(t.Turns, turns...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	side := t.First
	for i := range t.Turns {
		t.Turns[i].Side = side
		side = side.Switch()
	}
	return t, nil
}

// parseColumns splits "31: 1/4 12/13   64: 1/7" into turns.
func parseColumns(s string) ([]game.Turn, error) {
	var turns []game.Turn
	var cur *game.Turn
	var text []string

	flush := func() error {
		if cur == nil {
			return nil
		}
		if len(text) > 0 {
			m, err := engine.ParseMove(strings.Join(text, " "))
			if err != nil {
				return err
			}
			cur.Move = m
		}
		turns = append(turns, *cur)
		text = text[:0]
		return nil
	}

	for _, f := range strings.Fields(s) {
		if m := rollRE.FindStringSubmatch(f); m != nil {
			if err := flush(); err != nil {
				return nil, err
			}
			d, err := game.ParseDice(m[1])
			if err != nil {
				return nil, err
			}
			cur = &game.Turn{Dice: d}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("move %q before a roll", f)
		}
		text = append(text, f)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(turns) == 0 || len(turns) > 2 {
		return nil, fmt.Errorf("expected one or two turns, got %d", len(turns))
	}
	return turns, nil
}

// Replay plays every turn of t from the starting layout through a game, so
// the dice and the rules are checked again.
func Replay(t *Transcript) (*game.Game, error) {
	g := game.New(game.WithTurn(t.First))
	for i, turn := range t.Turns {
		if turn.Side != g.Turn {
			return g, fmt.Errorf("turn %d: %s to play, transcript has %s", i+1, g.Turn, turn.Side)
		}
		if err := g.SetDice(turn.Dice); err != nil {
			return g, fmt.Errorf("turn %d: %w", i+1, err)
		}
		var err error
		if len(turn.Move) == 0 {
			err = g.Pass()
		} else {
			err = g.PlayMove(turn.Move)
		}
		if err != nil {
			return g, fmt.Errorf("turn %d (%s %s: %s): %w", i+1, turn.Side, turn.Dice, turn.Move, err)
		}
	}
	return g, nil
}
