// Package game runs turns on top of the engine: it owns the dice and whose
// turn it is, checks that each submove matches an unused die, and commits a
// move only when every submove in it is legal.
package game

import (
	"errors"
	"fmt"

	"github.com/yourusername/bglogic/pkg/engine"
)

var (
	ErrNotRolled       = errors.New("dice not rolled")
	ErrAlreadyRolled   = errors.New("dice already rolled")
	ErrDiceMismatch    = errors.New("no unused die matches the submove")
	ErrWrongDirection  = errors.New("chequers only move forward")
	ErrNotAllHome      = errors.New("all chequers must be home to bear off")
	ErrTooManySubmoves = errors.New("more submoves than dice")
)

// Turn records one side's turn. Move is nil when the side could not play.
type Turn struct {
	Side engine.Player
	Dice Dice
	Move engine.Move
}

// Game is one game in progress. It is not safe for concurrent use.
type Game struct {
	Board engine.Board
	Turn  engine.Player
	Dice  Dice

	roller  Roller
	history []Turn
}

// Option configures a Game.
type Option func(*Game)

// WithRoller sets the dice source.
func WithRoller(r Roller) Option {
	return func(g *Game) { g.roller = r }
}

// WithBoard starts from b instead of the standard layout.
func WithBoard(b engine.Board) Option {
	return func(g *Game) { g.Board = b }
}

// WithTurn sets the side to play first.
func WithTurn(p engine.Player) Option {
	return func(g *Game) { g.Turn = p }
}

// New returns a game at the starting layout with Black to play.
func New(opts ...Option) *Game {
	g := &Game{
		Board: engine.StartingBoard(),
		Turn:  engine.Black,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.roller == nil {
		g.roller = NewRoller(0)
	}
	return g
}

// Roll rolls the dice for the side on turn.
func (g *Game) Roll() (Dice, error) {
	if g.Dice.Rolled() {
		return g.Dice, ErrAlreadyRolled
	}
	d := g.roller.Roll()
	if err := d.Check(); err != nil {
		return Dice{}, err
	}
	g.Dice = d
	return d, nil
}

// SetDice uses a roll made elsewhere.
func (g *Game) SetDice(d Dice) error {
	if g.Dice.Rolled() {
		return ErrAlreadyRolled
	}
	if err := d.Check(); err != nil {
		return err
	}
	g.Dice = d
	return nil
}

// Play parses and plays a move for the side on turn.
func (g *Game) Play(text string) error {
	m, err := engine.ParseMove(text)
	if err != nil {
		return err
	}
	return g.PlayMove(m)
}

// PlayMove plays m for the side on turn. Each submove must be legal and use
// an unused die. On success the turn passes; on failure nothing changes.
//
// It does not check that the move uses as many dice as possible.
func (g *Game) PlayMove(m engine.Move) error {
	if !g.Dice.Rolled() {
		return ErrNotRolled
	}
	if len(m) == 0 {
		return engine.ErrEmptyMove
	}
	dice := g.Dice.Pips()
	if len(m) > len(dice) {
		return fmt.Errorf("%w: %d submoves for %s", ErrTooManySubmoves, len(m), g.Dice)
	}

	next := g.Board
	for i, s := range m {
		if err := play(&next, s, g.Turn, &dice); err != nil {
			return fmt.Errorf("submove %d (%s): %w", i+1, s, err)
		}
	}

	g.Board = next
	g.endTurn(m)
	return nil
}

// Pass ends the turn without moving, for a roll that cannot be played.
func (g *Game) Pass() error {
	if !g.Dice.Rolled() {
		return ErrNotRolled
	}
	g.endTurn(nil)
	return nil
}

// History returns the turns played so far.
func (g *Game) History() []Turn {
	out := make([]Turn, len(g.history))
	copy(out, g.history)
	return out
}

func (g *Game) endTurn(m engine.Move) {
	g.history = append(g.history, Turn{Side: g.Turn, Dice: g.Dice, Move: m})
	g.Turn = g.Turn.Switch()
	g.Dice = Dice{}
}

// play validates s, spends the die it uses and applies it to b.
func play(b *engine.Board, s engine.Submove, side engine.Player, dice *[]int) error {
	ok, err := b.Validate(s, side)
	if err != nil {
		return err
	}
	if !ok {
		return engine.ErrIllegalSubmove
	}

	dist := int(s.To) - int(s.From)
	if dist <= 0 {
		return ErrWrongDirection
	}
	if s.Kind == engine.KindBearOff && !b.AllHome(side) {
		return ErrNotAllHome
	}

	i := dieFor(*dice, dist, s.Kind == engine.KindBearOff && farthest(b, side, s.From))
	if i < 0 {
		return fmt.Errorf("%w: distance %d, dice %v", ErrDiceMismatch, dist, *dice)
	}
	*dice = append((*dice)[:i], (*dice)[i+1:]...)

	return b.Apply(s, side)
}

// dieFor returns the index of the die to spend on dist, or -1. A larger die
// may be used when overshoot is allowed; the smallest such die is taken.
func dieFor(dice []int, dist int, overshoot bool) int {
	best := -1
	for i, d := range dice {
		if d == dist {
			return i
		}
		if overshoot && d > dist && (best < 0 || d < dice[best]) {
			best = i
		}
	}
	return best
}

// farthest reports whether side has no chequer further from home than from.
func farthest(b *engine.Board, side engine.Player, from engine.Position) bool {
	v := b.View(side)
	for p := engine.Bar; p < from; p++ {
		if !v[p].Empty() && v[p].Owner == side {
			return false
		}
	}
	return true
}
