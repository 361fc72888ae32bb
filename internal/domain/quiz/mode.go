package quiz

import (
	"fmt"
	"strings"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
)

// Mode selects prompt language and answer style. It is fixed for the life of
// a session; Reset is the only way to change it.
type Mode string

const (
	ModeCNToENChoice Mode = "cn_to_en_choice"
	ModeENToCNChoice Mode = "en_to_cn_choice"
	ModeCNToENTyped  Mode = "cn_to_en_typed"
)

var modeLabels = map[Mode]string{
	ModeCNToENChoice: "模式一：中文 ➜ 英文（二選一）",
	ModeENToCNChoice: "模式二：英文 ➜ 中文（二選一）",
	ModeCNToENTyped:  "模式三：中文 ➜ 英文（手寫輸入＋提示）",
}

func Modes() []Mode {
	return []Mode{ModeCNToENChoice, ModeENToCNChoice, ModeCNToENTyped}
}

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modeLabels[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

func (m Mode) Valid() bool {
	_, ok := modeLabels[m]
	return ok
}

func (m Mode) Label() string {
	return modeLabels[m]
}

// IsChoice reports whether the mode presents a two-option choice.
func (m Mode) IsChoice() bool {
	return m == ModeCNToENChoice || m == ModeENToCNChoice
}

// prompt is the text shown to the learner for t.
func (m Mode) prompt(t term.Term) string {
	if m == ModeENToCNChoice {
		return t.English
	}
	return t.Name
}

// matches compares an already trimmed answer against the field the mode asks
// for. English comparisons ignore case; Chinese names must match exactly.
func (m Mode) matches(answer string, t term.Term) bool {
	if m == ModeENToCNChoice {
		return answer == t.Name
	}
	return strings.EqualFold(answer, t.English)
}
