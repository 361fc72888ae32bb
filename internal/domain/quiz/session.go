package quiz

import (
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
	"github.com/Jelly-ChinChan/Zoology-app/internal/id"
)

type State string

const (
	StateActive          State = "active"
	StateAwaitingAdvance State = "awaiting_advance"
	StateFinished        State = "finished"
)

// Transition describes where Advance moved the session.
type Transition string

const (
	TransitionNextQuestion Transition = "next_question"
	TransitionNextRound    Transition = "next_round"
	TransitionFinished     Transition = "finished"
)

// Learner is the identity the learner typed in. Nothing depends on it.
type Learner struct {
	Name  string
	Class string
	Seat  string
}

// Question is what the presentation layer renders for the current position.
type Question struct {
	Index         int // position in the bank
	Number        int // 1-based position in the round
	Prompt        string
	Options       []string // choice modes only
	Hint          string   // typed mode only
	PendingAnswer string   // typed mode: what was submitted, until Advance
}

// Feedback is returned by Submit and kept until Advance.
type Feedback struct {
	IsCorrect      bool
	Chosen         string
	CorrectEnglish string
	CorrectName    string
	Options        []string
	Review         []ReviewItem // bilingual counterpart of each option
}

// ReviewItem pairs a displayed option with its glossary entry. Matched is
// false when the option is not in the bank (the placeholder).
type ReviewItem struct {
	Option  string
	Term    term.Term
	Matched bool
}

type Progress struct {
	Round    int
	Question int // 1-based
	Total    int
	Percent  int
}

// Session is the drill state machine for one learner. It is not safe for
// concurrent use; callers serialise access per session.
type Session struct {
	ID      string
	Learner Learner

	mode     Mode
	bank     *term.Bank
	cfg      SessionConfig
	selector *RoundSelector
	options  *OptionGenerator

	round         int // 0 once finished
	used          UsedKeys
	queue         []int
	position      int
	score         int
	submitted     bool
	pendingAnswer string
	feedback      *Feedback
	records       []AnswerRecord
}

// New validates its inputs before creating any state and starts round 1.
// A nil rng gets a time-seeded source.
func New(bank *term.Bank, mode Mode, cfg SessionConfig, rng *rand.Rand) (*Session, error) {
	if bank.Len() == 0 {
		return nil, term.ErrEmptyBank
	}
	if !mode.Valid() {
		return nil, ErrUnknownMode
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		ID:       id.New(),
		bank:     bank,
		cfg:      cfg.normalized(),
		selector: NewRoundSelector(rng),
		options:  NewOptionGenerator(bank, rng),
	}
	s.reset(mode)
	return s, nil
}

func (s *Session) reset(mode Mode) {
	s.mode = mode
	s.round = 1
	s.used = make(UsedKeys)
	s.records = nil
	s.startRound()
}

func (s *Session) startRound() {
	r := s.selector.Start(s.bank, s.used, s.cfg.QuestionsPerRound)
	s.queue = r.Queue
	s.position = 0
	s.score = 0
	s.submitted = false
	s.pendingAnswer = ""
	s.feedback = nil
	s.options.Reset()
}

// Reset re-initialises the whole session with mode and starts round 1.
func (s *Session) Reset(mode Mode) error {
	if !mode.Valid() {
		return ErrUnknownMode
	}
	s.reset(mode)
	return nil
}

// Restart plays again with the current mode.
func (s *Session) Restart() {
	s.reset(s.mode)
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Bank() *term.Bank {
	return s.bank
}

func (s *Session) State() State {
	switch {
	case s.round == 0:
		return StateFinished
	case s.submitted:
		return StateAwaitingAdvance
	default:
		return StateActive
	}
}

// Round returns the current round, and false once the session is finished.
func (s *Session) Round() (int, bool) {
	return s.round, s.round != 0
}

func (s *Session) Score() int {
	return s.score
}

// Current returns the question at the current position.
func (s *Session) Current() (Question, error) {
	if s.round == 0 {
		return Question{}, ErrFinished
	}

	index := s.queue[s.position]
	t := s.bank.At(index)
	q := Question{
		Index:  index,
		Number: s.position + 1,
		Prompt: s.mode.prompt(t),
	}
	if s.mode.IsChoice() {
		set, _ := s.options.OptionsFor(index, s.mode)
		q.Options = set.Display[:]
	} else {
		q.Hint = Hint(t.English)
		q.PendingAnswer = s.pendingAnswer
	}
	return q, nil
}

// Submit grades candidate against the current question and logs it. In
// choice modes an empty candidate is rejected with ErrNoSelection; in typed
// mode it is graded as wrong.
func (s *Session) Submit(candidate string) (Feedback, error) {
	switch s.State() {
	case StateFinished:
		return Feedback{}, ErrFinished
	case StateAwaitingAdvance:
		return Feedback{}, ErrAlreadySubmitted
	}

	index := s.queue[s.position]
	t := s.bank.At(index)
	answer := strings.TrimSpace(candidate)

	var shown []string
	if s.mode.IsChoice() {
		if answer == "" {
			return Feedback{}, ErrNoSelection
		}
		set, _ := s.options.OptionsFor(index, s.mode)
		shown = []string{set.Display[0], set.Display[1]}
	}

	correct := s.mode.matches(answer, t)
	s.records = append(s.records, AnswerRecord{
		Round:          s.round,
		PromptText:     s.mode.prompt(t),
		ChosenLabel:    answer,
		CorrectEnglish: t.English,
		CorrectName:    t.Name,
		IsCorrect:      correct,
		OptionsShown:   slices.Clone(shown),
	})
	if correct {
		s.score++
	}
	if !s.mode.IsChoice() {
		s.pendingAnswer = answer
	}
	s.submitted = true

	fb := Feedback{
		IsCorrect:      correct,
		Chosen:         answer,
		CorrectEnglish: t.English,
		CorrectName:    t.Name,
		Options:        shown,
		Review:         s.review(shown),
	}
	s.feedback = &fb
	return fb.clone(), nil
}

func (s *Session) review(options []string) []ReviewItem {
	if len(options) == 0 {
		return nil
	}
	items := make([]ReviewItem, len(options))
	for i, opt := range options {
		t, ok := s.bank.Counterpart(opt)
		items[i] = ReviewItem{Option: opt, Term: t, Matched: ok}
	}
	return items
}

// Feedback returns the feedback of the pending submission, if any.
func (s *Session) Feedback() (Feedback, bool) {
	if s.feedback == nil {
		return Feedback{}, false
	}
	return s.feedback.clone(), true
}

func (fb Feedback) clone() Feedback {
	fb.Options = slices.Clone(fb.Options)
	fb.Review = slices.Clone(fb.Review)
	return fb
}

// Advance moves past an answered question. At the end of a round the session
// moves to the next round when the round passed and rounds remain, and
// finishes otherwise.
func (s *Session) Advance() (Transition, error) {
	switch s.State() {
	case StateFinished:
		return "", ErrFinished
	case StateActive:
		return "", ErrNotSubmitted
	}

	s.used.Add(s.bank.At(s.queue[s.position]).English)
	s.position++
	s.submitted = false
	s.pendingAnswer = ""
	s.feedback = nil

	if s.position < len(s.queue) {
		return TransitionNextQuestion, nil
	}

	if s.roundPassed() && s.round < s.cfg.MaxRounds {
		s.round++
		s.startRound()
		return TransitionNextRound, nil
	}

	s.round = 0
	return TransitionFinished, nil
}

func (s *Session) roundPassed() bool {
	return len(s.queue)-s.score <= s.cfg.MaxMistakes
}

// Progress reports the round, the 1-based question number and completion
// percent. It is zero once the session is finished.
func (s *Session) Progress() Progress {
	if s.round == 0 {
		return Progress{}
	}
	n := len(s.queue)
	i := s.position + 1
	p := Progress{Round: s.round, Question: i, Total: n}
	if n > 0 {
		p.Percent = i * 100 / n
	}
	return p
}

// Records returns a copy of the answer log. The log itself never changes
// once written.
func (s *Session) Records() []AnswerRecord {
	out := make([]AnswerRecord, len(s.records))
	for i, r := range s.records {
		r.OptionsShown = slices.Clone(r.OptionsShown)
		out[i] = r
	}
	return out
}

func (s *Session) Summary() Summary {
	return Summarize(s.records)
}
