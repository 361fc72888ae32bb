package quiz

import (
	"math/rand"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
)

// UsedKeys holds the English keys answered earlier in the session. It spans
// rounds so recently drilled terms are not drawn again straight away.
type UsedKeys map[string]struct{}

func (u UsedKeys) Add(key string) {
	u[key] = struct{}{}
}

func (u UsedKeys) Has(key string) bool {
	_, ok := u[key]
	return ok
}

// Round is the outcome of starting a round.
type Round struct {
	Queue         []int // indices into the bank, in question order
	UsedKeysReset bool  // the exclusion set covered the whole bank and was cleared
}

type RoundSelector struct {
	rng *rand.Rand
}

func NewRoundSelector(rng *rand.Rand) *RoundSelector {
	return &RoundSelector{rng: rng}
}

// Start draws up to size distinct indices whose English key is not in used.
// When every term has been used, used is cleared and the whole bank is
// available again.
func (rs *RoundSelector) Start(bank *term.Bank, used UsedKeys, size int) Round {
	available := make([]int, 0, bank.Len())
	for i := 0; i < bank.Len(); i++ {
		if !used.Has(bank.At(i).English) {
			available = append(available, i)
		}
	}

	var reset bool
	if len(available) == 0 {
		clear(used)
		reset = true
		for i := 0; i < bank.Len(); i++ {
			available = append(available, i)
		}
	}

	// a full shuffle followed by a prefix is a uniform sample without replacement
	rs.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	if size > 0 && len(available) > size {
		available = available[:size]
	}

	return Round{Queue: available, UsedKeysReset: reset}
}
