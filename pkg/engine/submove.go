package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SubmoveKind tags the three kinds of single chequer relocation.
type SubmoveKind uint8

const (
	KindEnter SubmoveKind = iota + 1
	KindMove
	KindBearOff
)

func (k SubmoveKind) String() string {
	switch k {
	case KindEnter:
		return "enter"
	case KindMove:
		return "move"
	case KindBearOff:
		return "bear-off"
	}
	return fmt.Sprintf("SubmoveKind(%d)", uint8(k))
}

// Submove relocates one chequer. Positions are relative to the side making
// it. Enter always has From == Bar and BearOff always has To == Off, so two
// submoves can be compared with ==.
type Submove struct {
	Kind SubmoveKind
	From Position
	To   Position
}

// EnterSubmove brings a chequer in from the bar.
func EnterSubmove(to Position) Submove {
	return Submove{Kind: KindEnter, From: Bar, To: to}
}

// MoveSubmove moves a chequer between two points.
func MoveSubmove(from, to Position) Submove {
	return Submove{Kind: KindMove, From: from, To: to}
}

// BearOffSubmove takes a chequer off the board.
func BearOffSubmove(from Position) Submove {
	return Submove{Kind: KindBearOff, From: from, To: Off}
}

// ErrInvalidSubmove is returned for a Submove that no constructor produces,
// such as the zero value.
var ErrInvalidSubmove = errors.New("invalid submove")

// Check reports whether the submove is well formed for its kind.
func (s Submove) Check() error {
	switch s.Kind {
	case KindEnter:
		if s.From == Bar && s.To.IsPoint() {
			return nil
		}
	case KindMove:
		if s.From.IsPoint() && s.To.IsPoint() {
			return nil
		}
	case KindBearOff:
		if s.From.IsPoint() && s.To == Off {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %d/%d", ErrInvalidSubmove, s.Kind, s.From, s.To)
}

func (s Submove) String() string {
	switch s.Kind {
	case KindEnter:
		return fmt.Sprintf("%s/%d", barToken, s.To)
	case KindBearOff:
		return fmt.Sprintf("%d/%s", s.From, offToken)
	}
	return fmt.Sprintf("%d/%d", s.From, s.To)
}

// Move is the ordered list of submoves played for one roll.
type Move []Submove

// MaxSubmoves is the largest number of submoves in a Move (a double).
const MaxSubmoves = 4

func (m Move) String() string {
	parts := make([]string, len(m))
	for i, s := range m {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

const (
	barToken = "bar"
	offToken = "off"
)

// Parse errors. They are wrapped in a *ParseError.
var (
	ErrMalformedToken  = errors.New("malformed token")
	ErrOutOfRange      = errors.New("point out of range")
	ErrSeparator       = errors.New("submove needs exactly one '/'")
	ErrMisplacedToken  = errors.New("bar is only an origin and off only a destination")
	ErrEmptyMove       = errors.New("empty move")
	ErrTooManySubmoves = errors.New("too many submoves")
)

// ParseError reports the text that failed to parse.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type tokenKind int

const (
	tokenPoint tokenKind = iota
	tokenBar
	tokenOff
)

func parseToken(s string) (tokenKind, Position, error) {
	switch strings.ToLower(s) {
	case barToken, "b":
		return tokenBar, Bar, nil
	case offToken, "o":
		return tokenOff, Off, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedToken, s)
	}
	if n < 1 || n > NumPoints {
		return 0, 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return tokenPoint, Position(n), nil
}

// ParseSubmove parses "from/to", where from is a point number 1-24 or "bar"
// and to is a point number or "off".
//
//	ParseSubmove("bar/20") // EnterSubmove(20)
//	ParseSubmove("13/8")   // MoveSubmove(13, 8)
//	ParseSubmove("1/off")  // BearOffSubmove(1)
func ParseSubmove(s string) (Submove, error) {
	fail := func(err error) (Submove, error) {
		return Submove{}, &ParseError{Input: s, Err: err}
	}

	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return fail(ErrSeparator)
	}

	fromKind, from, err := parseToken(parts[0])
	if err != nil {
		return fail(err)
	}
	toKind, to, err := parseToken(parts[1])
	if err != nil {
		return fail(err)
	}

	switch {
	case fromKind == tokenBar && toKind == tokenPoint:
		return EnterSubmove(to), nil
	case fromKind == tokenPoint && toKind == tokenOff:
		return BearOffSubmove(from), nil
	case fromKind == tokenPoint && toKind == tokenPoint:
		return MoveSubmove(from, to), nil
	}
	return fail(ErrMisplacedToken)
}

// ParseMove parses whitespace separated submoves. Either every submove
// parses or no Move is returned.
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, &ParseError{Input: s, Err: ErrEmptyMove}
	}
	if len(fields) > MaxSubmoves {
		return nil, &ParseError{Input: s, Err: ErrTooManySubmoves}
	}

	m := make(Move, 0, len(fields))
	for _, f := range fields {
		sm, err := ParseSubmove(f)
		if err != nil {
			return nil, err
		}
		m = append(m, sm)
	}
	return m, nil
}
