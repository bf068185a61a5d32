// Package positionid encodes backgammon positions as gnubg position IDs.
//
// A position ID is the 80-bit key of a position in unpadded base64. The key
// lists, for each side in turn, the chequer count of its 24 points and then
// its bar, each count written as that many 1-bits followed by a 0-bit,
// least significant bit of each byte first.
package positionid

import (
	"encoding/base64"
	"errors"
)

// Length is the number of characters in a position ID.
const Length = 14

const (
	keyBits  = 80
	slots    = 25 // 24 points and the bar
	maxCount = 15
)

// TanBoard holds chequer counts as [side][point]. Points 0-23 are counted
// from that side's own home, so index 0 is the last point before bearing
// off. Index 24 is the bar. Side 1 is the side on roll.
type TanBoard [2][slots]uint8

// ErrInvalid is returned for a malformed or impossible position ID.
var ErrInvalid = errors.New("invalid position ID")

type key [keyBits / 8]byte

func (k *key) bit(pos int) bool {
	return k[pos/8]&(1<<(pos%8)) != 0
}

func (k *key) set(pos int) {
	k[pos/8] |= 1 << (pos % 8)
}

func pack(board TanBoard) key {
	var k key
	pos := 0
	for _, side := range board {
		for _, n := range side {
			for ; n > 0; n-- {
				k.set(pos)
				pos++
			}
			pos++
		}
	}
	return k
}

// unpack reads counts until both sides' 25 separators are seen; later bits
// are ignored.
func unpack(k key) TanBoard {
	var board TanBoard
	side, slot := 0, 0
	for pos := 0; pos < keyBits && side < 2; pos++ {
		if k.bit(pos) {
			board[side][slot]++
			continue
		}
		if slot++; slot == slots {
			side, slot = side+1, 0
		}
	}
	return board
}

func encode(k key) string {
	return base64.RawStdEncoding.EncodeToString(k[:])
}

// decode reads the first Length characters of id. Anything after them, such
// as a ":matchID" suffix, is ignored.
func decode(id string) (key, error) {
	var k key
	if len(id) < Length {
		return k, ErrInvalid
	}
	n, err := base64.RawStdEncoding.Decode(k[:], []byte(id[:Length]))
	if err != nil || n != len(k) {
		return key{}, ErrInvalid
	}
	return k, nil
}

// PositionID returns the position ID of board.
func PositionID(board TanBoard) string {
	return encode(pack(board))
}

// FromPositionID decodes id and checks that the result is a possible
// position.
func FromPositionID(id string) (TanBoard, error) {
	k, err := decode(id)
	if err != nil {
		return TanBoard{}, err
	}
	board := unpack(k)
	if !Check(board) {
		return board, ErrInvalid
	}
	return board, nil
}

// Check reports whether board could occur in play: no side has more than 15
// chequers, no point is shared, and the sides are not both on the bar
// against closed home boards.
func Check(board TanBoard) bool {
	for _, side := range board {
		total := 0
		for _, n := range side {
			total += int(n)
		}
		if total > maxCount {
			return false
		}
	}

	// Point i of one side is point 23-i of the other.
	for i := 0; i < 24; i++ {
		if board[0][i] > 0 && board[1][23-i] > 0 {
			return false
		}
	}

	return !(closed(board[0]) && closed(board[1]) && board[0][24] > 0 && board[1][24] > 0)
}

// closed reports whether side holds all six of its home points.
func closed(side [slots]uint8) bool {
	for _, n := range side[:6] {
		if n < 2 {
			return false
		}
	}
	return true
}

// Swap exchanges the two sides, turning the board over to the other side
// on roll.
func Swap(board TanBoard) TanBoard {
	return TanBoard{board[1], board[0]}
}
