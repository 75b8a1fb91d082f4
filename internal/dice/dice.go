package dice

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

const (
	// MaxCount bounds the number of dice in a single term
	MaxCount = 100
	// MaxSides bounds the size of a single die
	MaxSides = 1000
)

type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

func validate(count, sides int) error {
	if count < 1 || count > MaxCount {
		return qrerr.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 || sides > MaxSides {
		return qrerr.InvalidArgumentf("invalid dice size %d", sides)
	}
	return nil
}

func Roll(count, sides, bonus int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}

	rawTotal := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		rawTotal += roll
		out[i] = roll
	}

	log.Println("Rolling", count, "d", sides, ":", out, "total:", rawTotal+bonus)
	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// Notation renders the dice term, e.g. "2d6"
func (r *RollResult) Notation() string {
	return fmt.Sprintf("%dd%d", r.Count, r.Sides)
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("%s **%d** : %s", r.Notation(), r.RawTotal, compact)
}
