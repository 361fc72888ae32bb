package ws

import (
	"encoding/json"

	"github.com/Jelly-ChinChan/Zoology-app/internal/api"
)

type MessageType string

const (
	// Client -> Server
	MessageTypeAnswer  MessageType = "answer"
	MessageTypeAdvance MessageType = "advance"
	MessageTypeReset   MessageType = "reset"
	MessageTypeState   MessageType = "state"
	MessageTypeLearner MessageType = "learner"

	// Server -> Client
	MessageTypeFeedback   MessageType = "feedback"
	MessageTypeTransition MessageType = "transition"
	MessageTypeError      MessageType = "error"
)

// Message is what the server writes.
type Message struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

// Inbound is what the client sends. The payload is decoded once the type is
// known.
type Inbound struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type AnswerPayload struct {
	Answer string `json:"answer"`
}

type ResetPayload struct {
	Mode *string `json:"mode,omitempty"`
}

type TransitionPayload struct {
	Transition string              `json:"transition"`
	Session    api.SessionResponse `json:"session"`
}

type ErrorPayload struct {
	Code    string `json:"code"` // validation, protocol, bad_request
	Message string `json:"message"`
}

// decodePayload tolerates an absent payload.
func decodePayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}
