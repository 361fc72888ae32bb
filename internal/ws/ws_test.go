package ws_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Jelly-ChinChan/Zoology-app/internal/api"
	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/quiz"
	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
	"github.com/Jelly-ChinChan/Zoology-app/internal/service"
	"github.com/Jelly-ChinChan/Zoology-app/internal/store"
	"github.com/Jelly-ChinChan/Zoology-app/internal/ws"
)

type serverMessage struct {
	Type    ws.MessageType  `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newServer(t *testing.T, terms []term.Term) (*httptest.Server, *ws.Hub) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	s, err := store.Open(ctx, store.DriverSQLite, filepath.Join(t.TempDir(), "ws.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if len(terms) > 0 {
		if err := s.ReplaceTerms(ctx, terms); err != nil {
			t.Fatalf("failed to seed terms: %v", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	drills := service.NewDrillService(s, quiz.DefaultConfig(), logger)
	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	srv := httptest.NewServer(ws.NewHandler(drills, hub, logger, []string{"*"}))
	t.Cleanup(srv.Close)
	return srv, hub
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msgType ws.MessageType, payload any) {
	t.Helper()
	if err := conn.WriteJSON(map[string]any{"type": msgType, "payload": payload}); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
}

func receive(t *testing.T, conn *websocket.Conn, want ws.MessageType, v any) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg serverMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if msg.Type != want {
		t.Fatalf("expected %q message, got %q: %s", want, msg.Type, msg.Payload)
	}
	if v != nil {
		if err := json.Unmarshal(msg.Payload, v); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
	}
}

var zoo = []term.Term{
	{Name: "象", English: "Elephant"},
	{Name: "貓", English: "Cat"},
}

func TestConnect_SendsInitialState(t *testing.T) {
	srv, _ := newServer(t, zoo)
	conn := dial(t, srv, "mode=en_to_cn_choice&name=Amy&seat=7")

	var state api.SessionResponse
	receive(t, conn, ws.MessageTypeState, &state)

	if state.Mode != "en_to_cn_choice" || state.State != "active" {
		t.Errorf("unexpected state %+v", state)
	}
	if state.Learner.Name != "Amy" || state.Learner.Seat != "7" {
		t.Errorf("unexpected learner %+v", state.Learner)
	}
	if state.Question == nil || len(state.Question.Options) != 2 {
		t.Errorf("expected two options, got %+v", state.Question)
	}
}

func TestDrillOverWebsocket(t *testing.T) {
	srv, _ := newServer(t, zoo)
	conn := dial(t, srv, "mode=cn_to_en_typed")
	receive(t, conn, ws.MessageTypeState, nil)

	send(t, conn, ws.MessageTypeAdvance, nil)
	var errPayload ws.ErrorPayload
	receive(t, conn, ws.MessageTypeError, &errPayload)
	if errPayload.Code != "protocol" {
		t.Errorf("expected protocol error, got %+v", errPayload)
	}

	send(t, conn, ws.MessageTypeAnswer, ws.AnswerPayload{Answer: "not an animal"})
	var fb api.FeedbackResponse
	receive(t, conn, ws.MessageTypeFeedback, &fb)
	if fb.IsCorrect {
		t.Error("expected incorrect feedback")
	}

	send(t, conn, ws.MessageTypeAdvance, nil)
	var tr ws.TransitionPayload
	receive(t, conn, ws.MessageTypeTransition, &tr)
	if tr.Transition != "next_question" {
		t.Errorf("expected next_question, got %q", tr.Transition)
	}

	send(t, conn, ws.MessageTypeAnswer, ws.AnswerPayload{Answer: "still wrong"})
	receive(t, conn, ws.MessageTypeFeedback, nil)
	send(t, conn, ws.MessageTypeAdvance, nil)
	receive(t, conn, ws.MessageTypeTransition, &tr)
	if tr.Transition != "finished" || tr.Session.Summary == nil {
		t.Fatalf("expected finished with summary, got %+v", tr)
	}
	if tr.Session.Summary.TotalAnswered != 2 {
		t.Errorf("expected 2 answered, got %d", tr.Session.Summary.TotalAnswered)
	}

	send(t, conn, ws.MessageTypeReset, ws.ResetPayload{})
	var state api.SessionResponse
	receive(t, conn, ws.MessageTypeState, &state)
	if state.State != "active" || state.Mode != "cn_to_en_typed" {
		t.Errorf("expected fresh typed session, got %+v", state)
	}
}

func TestMalformedAndUnknownMessages(t *testing.T) {
	srv, _ := newServer(t, zoo)
	conn := dial(t, srv, "")
	receive(t, conn, ws.MessageTypeState, nil)

	conn.WriteMessage(websocket.TextMessage, []byte("{"))
	var errPayload ws.ErrorPayload
	receive(t, conn, ws.MessageTypeError, &errPayload)
	if errPayload.Code != "bad_request" {
		t.Errorf("expected bad_request, got %+v", errPayload)
	}

	send(t, conn, "dance", nil)
	receive(t, conn, ws.MessageTypeError, nil)

	send(t, conn, ws.MessageTypeAnswer, ws.AnswerPayload{Answer: ""})
	receive(t, conn, ws.MessageTypeError, &errPayload)
	if errPayload.Code != "validation" {
		t.Errorf("expected validation error for empty choice, got %+v", errPayload)
	}
}

func TestConnectionsAreIsolated(t *testing.T) {
	srv, hub := newServer(t, zoo)
	a := dial(t, srv, "mode=cn_to_en_typed")
	b := dial(t, srv, "mode=cn_to_en_typed")

	var stateA, stateB api.SessionResponse
	receive(t, a, ws.MessageTypeState, &stateA)
	receive(t, b, ws.MessageTypeState, &stateB)
	if stateA.ID == stateB.ID {
		t.Error("expected distinct sessions per connection")
	}
	if hub.Count() != 2 {
		t.Errorf("expected 2 connections, got %d", hub.Count())
	}

	send(t, a, ws.MessageTypeAnswer, ws.AnswerPayload{Answer: "x"})
	receive(t, a, ws.MessageTypeFeedback, nil)

	send(t, b, ws.MessageTypeState, nil)
	receive(t, b, ws.MessageTypeState, &stateB)
	if stateB.State != "active" {
		t.Errorf("submit on one connection leaked into another: %q", stateB.State)
	}
}

func TestUpgradeRejections(t *testing.T) {
	tests := []struct {
		name   string
		terms  []term.Term
		query  string
		status int
	}{
		{"unknown mode", zoo, "mode=nope", http.StatusBadRequest},
		{"empty glossary", nil, "mode=cn_to_en_choice", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.terms)
			url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?" + tt.query
			_, resp, err := websocket.DefaultDialer.Dial(url, nil)
			if err == nil {
				t.Fatal("expected dial to fail")
			}
			if resp == nil || resp.StatusCode != tt.status {
				t.Errorf("expected status %d, got %+v", tt.status, resp)
			}
		})
	}
}
