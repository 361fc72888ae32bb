package term_test

import (
	"errors"
	"testing"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
)

func TestNewBank_TrimsAndDropsIncomplete(t *testing.T) {
	bank, err := term.NewBank([]term.Term{
		{Name: "  貓 ", English: " Cat  "},
		{Name: "", English: "Ghost"},
		{Name: "狗", English: "   "},
		{Name: "象", English: "Elephant"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bank.Len() != 2 {
		t.Fatalf("expected 2 terms, got %d", bank.Len())
	}
	if got := bank.At(0); got.Name != "貓" || got.English != "Cat" {
		t.Errorf("expected trimmed 貓/Cat, got %q/%q", got.Name, got.English)
	}
	if got := bank.At(1); got.English != "Elephant" {
		t.Errorf("expected Elephant second, got %q", got.English)
	}
}

func TestNewBank_Empty(t *testing.T) {
	tests := []struct {
		name  string
		terms []term.Term
	}{
		{"nil", nil},
		{"blank rows only", []term.Term{{Name: " ", English: "x"}, {Name: "y", English: ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank, err := term.NewBank(tt.terms)
			if !errors.Is(err, term.ErrEmptyBank) {
				t.Errorf("expected ErrEmptyBank, got %v", err)
			}
			if bank != nil {
				t.Error("expected nil bank")
			}
		})
	}
}

func TestNewBank_KeepsDuplicates(t *testing.T) {
	bank, err := term.NewBank([]term.Term{
		{Name: "貓", English: "Cat"},
		{Name: "家貓", English: "Cat"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bank.Len() != 2 {
		t.Errorf("expected duplicates to be kept, got %d terms", bank.Len())
	}
}

func TestBank_TermsReturnsCopy(t *testing.T) {
	bank, _ := term.NewBank([]term.Term{{Name: "貓", English: "Cat"}})

	terms := bank.Terms()
	terms[0].English = "Dog"

	if bank.At(0).English != "Cat" {
		t.Error("expected bank to be unaffected by changes to the returned slice")
	}
}

func TestBank_Counterpart(t *testing.T) {
	bank, _ := term.NewBank([]term.Term{
		{Name: "貓", English: "Cat"},
		{Name: "狗", English: "Dog"},
	})

	tests := []struct {
		option    string
		wantFound bool
		wantName  string
	}{
		{"cat", true, "貓"},
		{" Dog ", true, "狗"},
		{"狗", true, "狗"},
		{"???", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			got, ok := bank.Counterpart(tt.option)
			if ok != tt.wantFound {
				t.Fatalf("expected found=%v, got %v", tt.wantFound, ok)
			}
			if ok && got.Name != tt.wantName {
				t.Errorf("expected %q, got %q", tt.wantName, got.Name)
			}
		})
	}
}
