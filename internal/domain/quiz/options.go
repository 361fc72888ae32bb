package quiz

import (
	"math/rand"
	"strings"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
)

// Placeholder stands in for the distractor when the bank has no other value.
const Placeholder = "???"

// OptionSet is the two-option choice shown for one question.
type OptionSet struct {
	Display [2]string
	Correct string
}

type optionKey struct {
	index int
	mode  Mode
}

// OptionGenerator draws the distractor for choice questions and memoizes the
// result per (index, mode) until Reset, so re-rendering a question never
// reshuffles it.
type OptionGenerator struct {
	bank  *term.Bank
	rng   *rand.Rand
	cache map[optionKey]OptionSet
}

func NewOptionGenerator(bank *term.Bank, rng *rand.Rand) *OptionGenerator {
	return &OptionGenerator{
		bank:  bank,
		rng:   rng,
		cache: make(map[optionKey]OptionSet),
	}
}

// OptionsFor returns the option set for the term at index. ok is false for
// the typed mode, which has no options, and for an index outside the bank.
func (g *OptionGenerator) OptionsFor(index int, mode Mode) (set OptionSet, ok bool) {
	if !mode.IsChoice() || index < 0 || index >= g.bank.Len() {
		return OptionSet{}, false
	}

	key := optionKey{index: index, mode: mode}
	if cached, ok := g.cache[key]; ok {
		return cached, true
	}

	target := g.bank.At(index)
	var correct string
	var pool []string
	switch mode {
	case ModeCNToENChoice:
		correct = target.English
		want := strings.ToLower(correct)
		for _, t := range g.bank.Terms() {
			if strings.ToLower(t.English) != want {
				pool = append(pool, t.English)
			}
		}
	case ModeENToCNChoice:
		correct = target.Name
		for _, t := range g.bank.Terms() {
			if t.Name != correct {
				pool = append(pool, t.Name)
			}
		}
	}

	distractor := Placeholder
	if len(pool) > 0 {
		distractor = pool[g.rng.Intn(len(pool))]
	}

	set = OptionSet{Display: [2]string{correct, distractor}, Correct: correct}
	g.rng.Shuffle(2, func(i, j int) {
		set.Display[i], set.Display[j] = set.Display[j], set.Display[i]
	})

	g.cache[key] = set
	return set, true
}

// Reset drops every memoized option set. Called when a round starts.
func (g *OptionGenerator) Reset() {
	clear(g.cache)
}
