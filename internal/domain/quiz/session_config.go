package quiz

const (
	MaxRounds         = 3
	QuestionsPerRound = 10
)

// SessionConfig holds the round policy for a drill session.
type SessionConfig struct {
	MaxRounds         int // rounds a learner can reach before the session ends
	QuestionsPerRound int // upper bound on questions drawn per round
	MaxMistakes       int // wrong answers tolerated in a round that still advances; 0 = perfect round
}

// DefaultConfig returns three rounds of ten questions gated on perfect rounds.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		MaxRounds:         MaxRounds,
		QuestionsPerRound: QuestionsPerRound,
		MaxMistakes:       0,
	}
}

func (c SessionConfig) normalized() SessionConfig {
	if c.MaxRounds < 1 {
		c.MaxRounds = MaxRounds
	}
	if c.QuestionsPerRound < 1 {
		c.QuestionsPerRound = QuestionsPerRound
	}
	if c.MaxMistakes < 0 {
		c.MaxMistakes = 0
	}
	return c
}
