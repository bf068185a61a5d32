package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/yourusername/bglogic/pkg/engine"
)

const version = "0.1.0"

var ErrInvalidSide = errors.New("invalid side")

var (
	lastError  string
	errorMutex sync.Mutex
)

// setError stores an error message for later retrieval. A nil error clears
// it, so every call leaves the outcome of that call behind.
func setError(err error) {
	errorMutex.Lock()
	defer errorMutex.Unlock()
	if err != nil {
		lastError = err.Error()
	} else {
		lastError = ""
	}
}

func lastErrorText() string {
	errorMutex.Lock()
	defer errorMutex.Unlock()
	return lastError
}

// parseBoard reads a position ID with Black on roll. A gnubg
// ":matchID" suffix is ignored.
func parseBoard(id string) (engine.Board, error) {
	if idx := strings.Index(id, ":"); idx >= 0 {
		id = id[:idx]
	}
	return engine.BoardFromPositionID(id, engine.Black)
}

func parseSide(side int) (engine.Player, error) {
	if side != 0 && side != 1 {
		return 0, fmt.Errorf("%w %d", ErrInvalidSide, side)
	}
	return engine.Player(side), nil
}

// result records err and renders v, or an error object, as JSON.
func result(v any, err error) (string, bool) {
	if err == nil {
		var b []byte
		if b, err = json.Marshal(v); err == nil {
			setError(nil)
			return string(b), true
		}
	}
	setError(err)
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(b), false
}

type submoveJSON struct {
	Kind string `json:"kind"`
	From int    `json:"from"`
	To   int    `json:"to"`
	Text string `json:"text"`
}

func boardAndSide(id string, side int) (engine.Board, engine.Player, error) {
	p, err := parseSide(side)
	if err != nil {
		return engine.Board{}, 0, err
	}
	b, err := parseBoard(id)
	return b, p, err
}

func view(id string, side int) (string, bool) {
	b, p, err := boardAndSide(id, side)
	if err != nil {
		return result(nil, err)
	}
	v := b.View(p)
	counts := make([]int, len(v))
	for i, pt := range v {
		counts[i] = int(pt.Count)
		if !pt.Empty() && pt.Owner != p {
			counts[i] = -counts[i]
		}
	}
	return result(counts, nil)
}

func parseMove(text string) (string, bool) {
	m, err := engine.ParseMove(text)
	if err != nil {
		return result(nil, err)
	}
	out := make([]submoveJSON, len(m))
	for i, s := range m {
		out[i] = submoveJSON{Kind: s.Kind.String(), From: int(s.From), To: int(s.To), Text: s.String()}
	}
	return result(out, nil)
}

func validate(id, submove string, side int) (string, bool) {
	b, p, err := boardAndSide(id, side)
	if err != nil {
		return result(nil, err)
	}
	s, err := engine.ParseSubmove(submove)
	if err != nil {
		return result(nil, err)
	}
	legal, err := b.Validate(s, p)
	return result(map[string]bool{"legal": legal}, err)
}

func apply(id, move string, side int) (string, bool) {
	b, p, err := boardAndSide(id, side)
	if err != nil {
		return result(nil, err)
	}
	m, err := engine.ParseMove(move)
	if err != nil {
		return result(nil, err)
	}
	if err := b.ApplyMove(m, p); err != nil {
		return result(nil, err)
	}
	return result(map[string]string{"position": b.PositionID(engine.Black)}, nil)
}

func pipCount(id string, side int) int {
	b, p, err := boardAndSide(id, side)
	setError(err)
	if err != nil {
		return -1
	}
	return b.PipCount(p)
}

func switchSide(side int) int {
	p, err := parseSide(side)
	setError(err)
	if err != nil {
		return -1
	}
	return int(p.Switch())
}
