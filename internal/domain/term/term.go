package term

import (
	"errors"
	"strings"
)

var ErrEmptyBank = errors.New("term bank has no valid terms")

// Term is one Chinese/English vocabulary pair.
type Term struct {
	Name    string `json:"name"`    // Chinese label
	English string `json:"english"` // English label
}

// Bank is the ordered, validated glossary a drill session draws from.
// Duplicate rows are kept as they are.
type Bank struct {
	terms []Term
}

// NewBank trims every term and drops the ones with an empty field.
// It returns ErrEmptyBank when nothing survives.
func NewBank(terms []Term) (*Bank, error) {
	cleaned := make([]Term, 0, len(terms))
	for _, t := range terms {
		name := strings.TrimSpace(t.Name)
		english := strings.TrimSpace(t.English)
		if name == "" || english == "" {
			continue
		}
		cleaned = append(cleaned, Term{Name: name, English: english})
	}
	if len(cleaned) == 0 {
		return nil, ErrEmptyBank
	}
	return &Bank{terms: cleaned}, nil
}

func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.terms)
}

func (b *Bank) At(i int) Term {
	return b.terms[i]
}

// Terms returns a copy of the glossary in load order.
func (b *Bank) Terms() []Term {
	out := make([]Term, len(b.terms))
	copy(out, b.terms)
	return out
}

// Counterpart finds the first term whose English matches option ignoring case,
// or whose Chinese name matches exactly.
func (b *Bank) Counterpart(option string) (Term, bool) {
	option = strings.TrimSpace(option)
	for _, t := range b.terms {
		if strings.EqualFold(option, t.English) || option == t.Name {
			return t, true
		}
	}
	return Term{}, false
}
