package quiz

// Snapshot is a read-only copy of everything the presentation layer needs to
// render a session: the current question while a round is running, the
// pending feedback after a submission, and the summary once finished.
type Snapshot struct {
	ID       string
	Mode     Mode
	Learner  Learner
	State    State
	Progress Progress
	Question *Question
	Feedback *Feedback
	Summary  *Summary
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:       s.ID,
		Mode:     s.mode,
		Learner:  s.Learner,
		State:    s.State(),
		Progress: s.Progress(),
	}

	if snap.State == StateFinished {
		sum := s.Summary()
		snap.Summary = &sum
		return snap
	}

	if q, err := s.Current(); err == nil {
		snap.Question = &q
	}
	if fb, ok := s.Feedback(); ok {
		snap.Feedback = &fb
	}
	return snap
}
