package api

import (
	"errors"
	"net/http"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/quiz"
)

// ── Request / Response types ────────────────────────────────────────────────

type LearnerPayload struct {
	Name  string `json:"name" example:"王小明"`
	Class string `json:"class" example:"701"`
	Seat  string `json:"seat" example:"12"`
}

type CreateSessionRequest struct {
	Mode    string         `json:"mode" example:"cn_to_en_choice"`
	Learner LearnerPayload `json:"learner"`
}

func (r *CreateSessionRequest) Validate() error {
	if r.Mode == "" {
		return errors.New("mode is required")
	}
	_, err := quiz.ParseMode(r.Mode)
	return err
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" example:"Elephant"`
}

type ResetSessionRequest struct {
	Mode *string `json:"mode,omitempty" example:"cn_to_en_typed"`
}

type ModeResponse struct {
	Mode     string `json:"mode" example:"cn_to_en_choice"`
	Label    string `json:"label"`
	IsChoice bool   `json:"is_choice"`
}

type ProgressResponse struct {
	Round    int `json:"round" example:"1"`
	Question int `json:"question" example:"3"`
	Total    int `json:"total" example:"10"`
	Percent  int `json:"percent" example:"30"`
}

type QuestionResponse struct {
	Number        int      `json:"number" example:"3"`
	Prompt        string   `json:"prompt" example:"象"`
	Options       []string `json:"options,omitempty"`
	Hint          string   `json:"hint,omitempty" example:"E…t"`
	PendingAnswer string   `json:"pending_answer,omitempty"`
}

type ReviewItemResponse struct {
	Option  string `json:"option" example:"Cat"`
	Name    string `json:"name,omitempty" example:"貓"`
	English string `json:"english,omitempty" example:"Cat"`
	Matched bool   `json:"matched"`
}

type FeedbackResponse struct {
	IsCorrect      bool                 `json:"is_correct"`
	Chosen         string               `json:"chosen" example:"cat"`
	CorrectEnglish string               `json:"correct_english" example:"Cat"`
	CorrectName    string               `json:"correct_name" example:"貓"`
	Options        []string             `json:"options,omitempty"`
	Review         []ReviewItemResponse `json:"review,omitempty"`
}

type SummaryResponse struct {
	TotalAnswered int     `json:"total_answered" example:"10"`
	TotalCorrect  int     `json:"total_correct" example:"9"`
	Accuracy      float64 `json:"accuracy" example:"90"`
}

type SessionResponse struct {
	ID        string            `json:"id"`
	Mode      string            `json:"mode" example:"cn_to_en_choice"`
	ModeLabel string            `json:"mode_label"`
	Learner   LearnerPayload    `json:"learner"`
	State     string            `json:"state" example:"active"`
	Progress  *ProgressResponse `json:"progress,omitempty"`
	Question  *QuestionResponse `json:"question,omitempty"`
	Feedback  *FeedbackResponse `json:"feedback,omitempty"`
	Summary   *SummaryResponse  `json:"summary,omitempty"`
}

type AdvanceResponse struct {
	Transition string          `json:"transition" example:"next_question"`
	Session    SessionResponse `json:"session"`
}

type RecordResponse struct {
	Round          int      `json:"round"`
	Prompt         string   `json:"prompt"`
	Chosen         string   `json:"chosen"`
	CorrectEnglish string   `json:"correct_english"`
	CorrectName    string   `json:"correct_name"`
	IsCorrect      bool     `json:"is_correct"`
	OptionsShown   []string `json:"options_shown,omitempty"`
}

func (p LearnerPayload) toLearner() quiz.Learner {
	return quiz.Learner{Name: p.Name, Class: p.Class, Seat: p.Seat}
}

// NewSessionResponse converts a snapshot for the wire. The websocket
// transport uses it too.
func NewSessionResponse(snap quiz.Snapshot) SessionResponse {
	resp := SessionResponse{
		ID:        snap.ID,
		Mode:      string(snap.Mode),
		ModeLabel: snap.Mode.Label(),
		Learner: LearnerPayload{
			Name:  snap.Learner.Name,
			Class: snap.Learner.Class,
			Seat:  snap.Learner.Seat,
		},
		State: string(snap.State),
	}

	if snap.State != quiz.StateFinished {
		resp.Progress = &ProgressResponse{
			Round:    snap.Progress.Round,
			Question: snap.Progress.Question,
			Total:    snap.Progress.Total,
			Percent:  snap.Progress.Percent,
		}
	}
	if q := snap.Question; q != nil {
		resp.Question = &QuestionResponse{
			Number:        q.Number,
			Prompt:        q.Prompt,
			Options:       q.Options,
			Hint:          q.Hint,
			PendingAnswer: q.PendingAnswer,
		}
	}
	if snap.Feedback != nil {
		fb := NewFeedbackResponse(*snap.Feedback)
		resp.Feedback = &fb
	}
	if snap.Summary != nil {
		sum := newSummaryResponse(*snap.Summary)
		resp.Summary = &sum
	}
	return resp
}

func NewFeedbackResponse(fb quiz.Feedback) FeedbackResponse {
	resp := FeedbackResponse{
		IsCorrect:      fb.IsCorrect,
		Chosen:         fb.Chosen,
		CorrectEnglish: fb.CorrectEnglish,
		CorrectName:    fb.CorrectName,
		Options:        fb.Options,
	}
	for _, item := range fb.Review {
		ri := ReviewItemResponse{Option: item.Option, Matched: item.Matched}
		if item.Matched {
			ri.Name = item.Term.Name
			ri.English = item.Term.English
		}
		resp.Review = append(resp.Review, ri)
	}
	return resp
}

func newSummaryResponse(s quiz.Summary) SummaryResponse {
	return SummaryResponse{
		TotalAnswered: s.TotalAnswered,
		TotalCorrect:  s.TotalCorrect,
		Accuracy:      s.Accuracy,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listModes lists the drill modes.
// @Summary      List drill modes
// @Tags         Sessions
// @Produce      json
// @Success      200  {array}  ModeResponse
// @Router       /modes [get]
func (h *Handler) listModes(w http.ResponseWriter, r *http.Request) {
	modes := quiz.Modes()
	resp := make([]ModeResponse, len(modes))
	for i, m := range modes {
		resp[i] = ModeResponse{Mode: string(m), Label: m.Label(), IsChoice: m.IsChoice()}
	}
	respondJSON(w, http.StatusOK, resp)
}

// createSession starts a drill session.
// @Summary      Start a drill session
// @Description  Draws round 1 from the stored glossary. The mode is fixed until the session is reset.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Mode and learner"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse  "glossary is empty"
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	mode, _ := quiz.ParseMode(req.Mode)

	snap, err := h.drills.Create(r.Context(), mode, req.Learner.toLearner())
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, NewSessionResponse(snap))
}

// getSession returns the current view of a session.
// @Summary      Get a drill session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.drills.Get(r.PathValue("sessionID"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, NewSessionResponse(snap))
}

// deleteSession discards a session.
// @Summary      Delete a drill session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.drills.Delete(r.PathValue("sessionID"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// submitAnswer grades the answer to the current question.
// @Summary      Submit an answer
// @Description  Choice modes reject an empty answer with 400. A second submit before advancing is rejected with 409.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Answer"
// @Success      200        {object}  FeedbackResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fb, err := h.drills.Submit(r.PathValue("sessionID"), req.Answer)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, NewFeedbackResponse(fb))
}

// advanceSession moves past an answered question.
// @Summary      Advance a drill session
// @Description  Moves to the next question, the next round, or finishes. 409 before an answer is submitted.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  AdvanceResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/advance [post]
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	tr, snap, err := h.drills.Advance(r.PathValue("sessionID"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, AdvanceResponse{
		Transition: string(tr),
		Session:    NewSessionResponse(snap),
	})
}

// resetSession starts the session over.
// @Summary      Reset a drill session
// @Description  An empty body or omitted mode plays again with the same mode.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true   "Session ID"
// @Param        body       body      ResetSessionRequest  false  "New mode"
// @Success      200        {object}  SessionResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/reset [post]
func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	var req ResetSessionRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	var mode *quiz.Mode
	if req.Mode != nil {
		m, err := quiz.ParseMode(*req.Mode)
		if h.handleError(w, err) {
			return
		}
		mode = &m
	}

	snap, err := h.drills.Reset(r.PathValue("sessionID"), mode)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, NewSessionResponse(snap))
}

// updateLearner replaces the learner identity.
// @Summary      Update the learner
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string          true  "Session ID"
// @Param        body       body      LearnerPayload  true  "Learner"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/learner [patch]
func (h *Handler) updateLearner(w http.ResponseWriter, r *http.Request) {
	var req LearnerPayload
	if !decodeJSON(w, r, &req) {
		return
	}

	snap, err := h.drills.SetLearner(r.PathValue("sessionID"), req.toLearner())
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, NewSessionResponse(snap))
}

// listRecords returns the answer log.
// @Summary      List answer records
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {array}   RecordResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/records [get]
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.drills.Records(r.PathValue("sessionID"))
	if h.handleError(w, err) {
		return
	}

	resp := make([]RecordResponse, len(records))
	for i, rec := range records {
		resp[i] = RecordResponse{
			Round:          rec.Round,
			Prompt:         rec.PromptText,
			Chosen:         rec.ChosenLabel,
			CorrectEnglish: rec.CorrectEnglish,
			CorrectName:    rec.CorrectName,
			IsCorrect:      rec.IsCorrect,
			OptionsShown:   rec.OptionsShown,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// getSummary scores the answer log.
// @Summary      Get the session summary
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SummaryResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/summary [get]
func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.drills.Summary(r.PathValue("sessionID"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, newSummaryResponse(sum))
}
