package quiz

import "strings"

// AnswerRecord is one logged answer. Records are appended once per answered
// question and never modified.
type AnswerRecord struct {
	Round          int
	PromptText     string
	ChosenLabel    string
	CorrectEnglish string
	CorrectName    string
	IsCorrect      bool
	OptionsShown   []string // nil in typed mode
}

type Summary struct {
	TotalAnswered int
	TotalCorrect  int
	Accuracy      float64 // percent, 0 when nothing was answered
}

func Summarize(records []AnswerRecord) Summary {
	s := Summary{TotalAnswered: len(records)}
	for _, r := range records {
		if r.IsCorrect {
			s.TotalCorrect++
		}
	}
	if s.TotalAnswered > 0 {
		s.Accuracy = float64(s.TotalCorrect) * 100 / float64(s.TotalAnswered)
	}
	return s
}

// Hint shows a typed-mode target as first rune, ellipsis, last rune.
// Targets of at most two characters are shown whole.
func Hint(english string) string {
	w := []rune(strings.TrimSpace(english))
	if len(w) <= 2 {
		return string(w)
	}
	return string(w[0]) + "…" + string(w[len(w)-1])
}
