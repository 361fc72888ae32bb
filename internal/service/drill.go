// internal/service/drill.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/quiz"
	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
	"github.com/Jelly-ChinChan/Zoology-app/internal/store"
)

var ErrSessionNotFound = errors.New("session not found")

// DrillService owns the live drill sessions. Each session is independent and
// guarded by its own mutex, so one learner's requests are handled one at a
// time while different learners never contend.
type DrillService struct {
	store  store.Store
	config quiz.SessionConfig
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

type liveSession struct {
	mu       sync.Mutex
	session  *quiz.Session
	lastUsed atomic.Int64 // unix nanos
}

func newLiveSession(s *quiz.Session) *liveSession {
	live := &liveSession{session: s}
	live.touch()
	return live
}

func (l *liveSession) touch() {
	l.lastUsed.Store(time.Now().UnixNano())
}

func NewDrillService(s store.Store, cfg quiz.SessionConfig, logger *slog.Logger) *DrillService {
	return &DrillService{
		store:    s,
		config:   cfg,
		logger:   logger,
		sessions: make(map[string]*liveSession),
	}
}

// LoadBank reads the glossary and validates it. An empty glossary yields
// term.ErrEmptyBank.
func (ds *DrillService) LoadBank(ctx context.Context) (*term.Bank, error) {
	terms, err := ds.store.ListTerms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return term.NewBank(terms)
}

// Open builds a session the service does not track. The caller owns it.
func (ds *DrillService) Open(ctx context.Context, mode quiz.Mode, learner quiz.Learner) (*quiz.Session, error) {
	bank, err := ds.LoadBank(ctx)
	if err != nil {
		return nil, err
	}
	s, err := quiz.New(bank, mode, ds.config, nil)
	if err != nil {
		return nil, err
	}
	s.Learner = learner
	return s, nil
}

// Create opens a session and registers it for later requests.
func (ds *DrillService) Create(ctx context.Context, mode quiz.Mode, learner quiz.Learner) (quiz.Snapshot, error) {
	s, err := ds.Open(ctx, mode, learner)
	if err != nil {
		return quiz.Snapshot{}, err
	}

	ds.mu.Lock()
	ds.sessions[s.ID] = newLiveSession(s)
	ds.mu.Unlock()

	ds.logger.Info("session created",
		"session_id", s.ID,
		"mode", mode,
		"questions", s.Progress().Total,
	)
	return s.Snapshot(), nil
}

// with runs fn while holding the session's lock.
func (ds *DrillService) with(sessionID string, fn func(*quiz.Session) error) error {
	ds.mu.RLock()
	live, ok := ds.sessions[sessionID]
	ds.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	live.mu.Lock()
	defer live.mu.Unlock()
	live.touch()
	return fn(live.session)
}

func (ds *DrillService) Get(sessionID string) (quiz.Snapshot, error) {
	var snap quiz.Snapshot
	err := ds.with(sessionID, func(s *quiz.Session) error {
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

func (ds *DrillService) Submit(sessionID, answer string) (quiz.Feedback, error) {
	var fb quiz.Feedback
	err := ds.with(sessionID, func(s *quiz.Session) error {
		var err error
		fb, err = s.Submit(answer)
		return err
	})
	if errors.Is(err, quiz.ErrProtocol) {
		ds.logger.Warn("rejected submit", "session_id", sessionID, "error", err)
	}
	return fb, err
}

func (ds *DrillService) Advance(sessionID string) (quiz.Transition, quiz.Snapshot, error) {
	var tr quiz.Transition
	var snap quiz.Snapshot
	err := ds.with(sessionID, func(s *quiz.Session) error {
		var err error
		tr, err = s.Advance()
		if err != nil {
			return err
		}
		snap = s.Snapshot()
		return nil
	})
	if errors.Is(err, quiz.ErrProtocol) {
		ds.logger.Warn("rejected advance", "session_id", sessionID, "error", err)
		return "", quiz.Snapshot{}, err
	}
	if err != nil {
		return "", quiz.Snapshot{}, err
	}

	if tr == quiz.TransitionFinished {
		ds.logger.Info("session finished",
			"session_id", sessionID,
			"answered", snap.Summary.TotalAnswered,
			"correct", snap.Summary.TotalCorrect,
		)
	}
	return tr, snap, nil
}

// Reset starts the session over. A nil mode keeps the current one.
func (ds *DrillService) Reset(sessionID string, mode *quiz.Mode) (quiz.Snapshot, error) {
	var snap quiz.Snapshot
	err := ds.with(sessionID, func(s *quiz.Session) error {
		if mode == nil {
			s.Restart()
		} else if err := s.Reset(*mode); err != nil {
			return err
		}
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

func (ds *DrillService) SetLearner(sessionID string, learner quiz.Learner) (quiz.Snapshot, error) {
	var snap quiz.Snapshot
	err := ds.with(sessionID, func(s *quiz.Session) error {
		s.Learner = learner
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

func (ds *DrillService) Records(sessionID string) ([]quiz.AnswerRecord, error) {
	var records []quiz.AnswerRecord
	err := ds.with(sessionID, func(s *quiz.Session) error {
		records = s.Records()
		return nil
	})
	return records, err
}

func (ds *DrillService) Summary(sessionID string) (quiz.Summary, error) {
	var sum quiz.Summary
	err := ds.with(sessionID, func(s *quiz.Session) error {
		sum = s.Summary()
		return nil
	})
	return sum, err
}

func (ds *DrillService) Delete(sessionID string) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if _, ok := ds.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(ds.sessions, sessionID)
	return nil
}

// Count returns the number of live sessions.
func (ds *DrillService) Count() int {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return len(ds.sessions)
}

// Sweep removes sessions not used since cutoff and returns how many went.
func (ds *DrillService) Sweep(cutoff time.Time) int {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	removed := 0
	for id, live := range ds.sessions {
		if live.lastUsed.Load() < cutoff.UnixNano() {
			delete(ds.sessions, id)
			removed++
		}
	}
	return removed
}

// ExpireIdle sweeps sessions idle for longer than ttl until ctx is done.
// A ttl of zero or less keeps sessions until they are deleted.
func (ds *DrillService) ExpireIdle(ctx context.Context, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(max(ttl/4, time.Second))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := ds.Sweep(now.Add(-ttl)); n > 0 {
				ds.logger.Info("expired idle sessions", "removed", n, "remaining", ds.Count())
			}
		}
	}
}
