package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Player identifies one of the two sides.
type Player uint8

const (
	// Black starts with two chequers on point 1 and moves towards point 24.
	Black Player = iota
	// White starts with two chequers on point 24 and moves towards point 1.
	White
)

// Switch returns the opposing side.
func (p Player) Switch() Player {
	return p ^ 1
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("Player(%d)", uint8(p))
}

// ErrUnknownPlayer is returned by ParsePlayer for an unrecognised side.
var ErrUnknownPlayer = errors.New("unknown player")

// ParsePlayer accepts "black"/"b"/"x"/"0" and "white"/"w"/"o"/"1".
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b", "x", "0":
		return Black, nil
	case "white", "w", "o", "1":
		return White, nil
	}
	return Black, fmt.Errorf("%w %q", ErrUnknownPlayer, s)
}
