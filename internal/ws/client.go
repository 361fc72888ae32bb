package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Jelly-ChinChan/Zoology-app/internal/api"
	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/quiz"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client is one websocket connection and the drill session it owns. Only the
// read pump touches the session.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	session *quiz.Session
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, session *quiz.Session, logger *slog.Logger) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 64),
		session: session,
		logger:  logger.With("session_id", session.ID),
	}
}

// close stops the write pump. Safe to call more than once.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
		c.logger.Info("websocket disconnected", "answered", len(c.session.Records()))
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read failed", "error", err)
			}
			return
		}

		var msg Inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError("bad_request", "invalid message format")
			continue
		}
		c.handle(msg)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Warn("websocket write failed", "error", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handle(msg Inbound) {
	switch msg.Type {
	case MessageTypeState:
		c.sendState()

	case MessageTypeAnswer:
		var p AnswerPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			c.sendError("bad_request", "invalid answer payload")
			return
		}
		fb, err := c.session.Submit(p.Answer)
		if err != nil {
			c.rejected("submit", err)
			return
		}
		c.sendMessage(MessageTypeFeedback, api.NewFeedbackResponse(fb))

	case MessageTypeAdvance:
		tr, err := c.session.Advance()
		if err != nil {
			c.rejected("advance", err)
			return
		}
		if tr == quiz.TransitionFinished {
			sum := c.session.Summary()
			c.logger.Info("session finished", "answered", sum.TotalAnswered, "accuracy", sum.Accuracy)
		}
		c.sendMessage(MessageTypeTransition, TransitionPayload{
			Transition: string(tr),
			Session:    api.NewSessionResponse(c.session.Snapshot()),
		})

	case MessageTypeReset:
		var p ResetPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			c.sendError("bad_request", "invalid reset payload")
			return
		}
		if p.Mode == nil {
			c.session.Restart()
		} else {
			mode, err := quiz.ParseMode(*p.Mode)
			if err != nil {
				c.sendError("validation", err.Error())
				return
			}
			if err := c.session.Reset(mode); err != nil {
				c.sendError("validation", err.Error())
				return
			}
		}
		c.sendState()

	case MessageTypeLearner:
		var p api.LearnerPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			c.sendError("bad_request", "invalid learner payload")
			return
		}
		c.session.Learner = quiz.Learner{Name: p.Name, Class: p.Class, Seat: p.Seat}
		c.sendState()

	default:
		c.sendError("bad_request", "unknown message type "+string(msg.Type))
	}
}

func (c *Client) rejected(action string, err error) {
	code := "bad_request"
	switch {
	case errors.Is(err, quiz.ErrProtocol):
		code = "protocol"
		c.logger.Warn("rejected "+action, "error", err)
	case errors.Is(err, quiz.ErrValidation):
		code = "validation"
	}
	c.sendError(code, err.Error())
}

func (c *Client) sendState() {
	c.sendMessage(MessageTypeState, api.NewSessionResponse(c.session.Snapshot()))
}

func (c *Client) sendError(code, message string) {
	c.sendMessage(MessageTypeError, ErrorPayload{Code: code, Message: message})
}

// sendMessage drops the connection when the client cannot keep up.
func (c *Client) sendMessage(msgType MessageType, payload any) {
	data, err := json.Marshal(Message{Type: msgType, Payload: payload})
	if err != nil {
		c.logger.Error("failed to marshal message", "type", msgType, "error", err)
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	select {
	case c.send <- data:
		c.mu.Unlock()
	default:
		c.mu.Unlock()
		c.logger.Warn("send buffer full, closing connection")
		c.close()
	}
}
