package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DieMax is the highest face of a die.
const DieMax = 6

// Dice is a roll of two dice. The zero value means not rolled.
type Dice [2]int

// ErrInvalidDice is returned for dice outside 1-6.
var ErrInvalidDice = errors.New("dice must be 1-6")

// Rolled reports whether the dice hold a roll.
func (d Dice) Rolled() bool {
	return d[0] != 0 && d[1] != 0
}

// Double reports whether both dice show the same face.
func (d Dice) Double() bool {
	return d.Rolled() && d[0] == d[1]
}

// Check reports whether both dice are in 1-6.
func (d Dice) Check() error {
	for _, n := range d {
		if n < 1 || n > DieMax {
			return fmt.Errorf("%w: %d%d", ErrInvalidDice, d[0], d[1])
		}
	}
	return nil
}

// Pips lists the distances the roll allows: two, or four for a double.
func (d Dice) Pips() []int {
	if d.Double() {
		return []int{d[0], d[0], d[0], d[0]}
	}
	return []int{d[0], d[1]}
}

func (d Dice) String() string {
	return fmt.Sprintf("%d%d", d[0], d[1])
}

// ParseDice reads "31", "3-1" or "3,1".
func ParseDice(s string) (Dice, error) {
	var d Dice
	var err error
	switch len(s) {
	case 2:
		d = Dice{int(s[0] - '0'), int(s[1] - '0')}
	case 3:
		if s[1] != '-' && s[1] != ',' {
			err = fmt.Errorf("%w: %q", ErrInvalidDice, s)
		}
		d = Dice{int(s[0] - '0'), int(s[2] - '0')}
	default:
		err = fmt.Errorf("%w: %q", ErrInvalidDice, s)
	}
	if err != nil {
		return Dice{}, err
	}
	if err := d.Check(); err != nil {
		return Dice{}, err
	}
	return d, nil
}

// Roller supplies dice.
type Roller interface {
	Roll() Dice
}

// RandomRoller rolls two independent uniform dice.
type RandomRoller struct {
	rng *rand.Rand
}

// NewRoller returns a RandomRoller. A zero seed picks a random one.
func NewRoller(seed uint64) *RandomRoller {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomRoller{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Roll rolls both dice.
func (r *RandomRoller) Roll() Dice {
	return Dice{r.rng.IntN(DieMax) + 1, r.rng.IntN(DieMax) + 1}
}
