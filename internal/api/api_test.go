package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jelly-ChinChan/Zoology-app/internal/api"
	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/quiz"
	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
	"github.com/Jelly-ChinChan/Zoology-app/internal/service"
	"github.com/Jelly-ChinChan/Zoology-app/internal/store"
)

var zoo = []term.Term{
	{Name: "象", English: "Elephant"},
	{Name: "貓", English: "Cat"},
	{Name: "狗", English: "Dog"},
}

func newServer(t *testing.T, terms []term.Term) http.Handler {
	t.Helper()
	ctx := context.Background()

	s, err := store.Open(ctx, store.DriverSQLite, filepath.Join(t.TempDir(), "api.db"))
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

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(service.NewGlossaryService(s, logger), drills, logger))
	return api.Chain(mux, logger, []string{"*"})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}

func createSession(t *testing.T, h http.Handler, mode string) api.SessionResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/sessions",
		`{"mode":"`+mode+`","learner":{"name":"王小明","class":"701","seat":"12"}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	return decode[api.SessionResponse](t, rec)
}

func TestListModes(t *testing.T) {
	h := newServer(t, nil)

	rec := do(t, h, http.MethodGet, "/modes", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	modes := decode[[]api.ModeResponse](t, rec)
	if len(modes) != 3 {
		t.Fatalf("expected 3 modes, got %d", len(modes))
	}
	if modes[2].Mode != "cn_to_en_typed" || modes[2].IsChoice {
		t.Errorf("unexpected typed mode entry %+v", modes[2])
	}
}

func TestCreateSession_ChoiceMode(t *testing.T) {
	h := newServer(t, zoo)

	sess := createSession(t, h, "cn_to_en_choice")

	if sess.ID == "" {
		t.Error("expected session id")
	}
	if sess.State != "active" {
		t.Errorf("expected active, got %q", sess.State)
	}
	if sess.Learner.Name != "王小明" || sess.Learner.Seat != "12" {
		t.Errorf("unexpected learner %+v", sess.Learner)
	}
	if sess.Progress == nil || sess.Progress.Round != 1 || sess.Progress.Total != 3 {
		t.Fatalf("unexpected progress %+v", sess.Progress)
	}
	if sess.Question == nil || len(sess.Question.Options) != 2 {
		t.Fatalf("expected two options, got %+v", sess.Question)
	}
}

func TestCreateSession_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		terms  []term.Term
		body   string
		status int
	}{
		{"missing mode", zoo, `{}`, http.StatusBadRequest},
		{"unknown mode", zoo, `{"mode":"en_to_cn_typed"}`, http.StatusBadRequest},
		{"malformed body", zoo, `{`, http.StatusBadRequest},
		{"empty glossary", nil, `{"mode":"cn_to_en_choice"}`, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newServer(t, tt.terms)
			rec := do(t, h, http.MethodPost, "/sessions", tt.body)
			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetSession_NotFound(t *testing.T) {
	h := newServer(t, zoo)

	rec := do(t, h, http.MethodGet, "/sessions/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestSubmitAndAdvance(t *testing.T) {
	h := newServer(t, zoo)
	sess := createSession(t, h, "cn_to_en_typed")
	base := "/sessions/" + sess.ID

	rec := do(t, h, http.MethodPost, base+"/advance", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("advance before submit: expected 409, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPost, base+"/answers", `{"answer":"definitely wrong"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	fb := decode[api.FeedbackResponse](t, rec)
	if fb.IsCorrect {
		t.Error("expected incorrect feedback")
	}
	if fb.CorrectEnglish == "" || fb.CorrectName == "" {
		t.Errorf("expected correct answer in feedback, got %+v", fb)
	}

	rec = do(t, h, http.MethodPost, base+"/answers", `{"answer":"again"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("double submit: expected 409, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, base, "")
	got := decode[api.SessionResponse](t, rec)
	if got.State != "awaiting_advance" || got.Feedback == nil {
		t.Fatalf("expected pending feedback, got %+v", got)
	}
	if got.Question == nil || got.Question.PendingAnswer != "definitely wrong" {
		t.Errorf("expected pending answer to be kept, got %+v", got.Question)
	}

	rec = do(t, h, http.MethodPost, base+"/advance", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	adv := decode[api.AdvanceResponse](t, rec)
	if adv.Transition != "next_question" {
		t.Errorf("expected next_question, got %q", adv.Transition)
	}
	if adv.Session.Progress.Question != 2 {
		t.Errorf("expected question 2, got %d", adv.Session.Progress.Question)
	}

	rec = do(t, h, http.MethodGet, base+"/records", "")
	records := decode[[]api.RecordResponse](t, rec)
	if len(records) != 1 || records[0].IsCorrect {
		t.Errorf("expected one incorrect record, got %+v", records)
	}
}

func TestSubmit_EmptyChoiceRejected(t *testing.T) {
	h := newServer(t, zoo)
	sess := createSession(t, h, "en_to_cn_choice")

	rec := do(t, h, http.MethodPost, "/sessions/"+sess.ID+"/answers", `{"answer":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestPlayThrough_Finishes(t *testing.T) {
	h := newServer(t, zoo)
	sess := createSession(t, h, "cn_to_en_choice")
	base := "/sessions/" + sess.ID

	// Always wrong: round 1 fails, so the drill finishes after 3 questions.
	var last api.AdvanceResponse
	for i := 0; i < 3; i++ {
		rec := do(t, h, http.MethodPost, base+"/answers", `{"answer":"???wrong"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("submit %d: expected 200, got %d", i, rec.Code)
		}
		rec = do(t, h, http.MethodPost, base+"/advance", "")
		last = decode[api.AdvanceResponse](t, rec)
	}

	if last.Transition != "finished" {
		t.Fatalf("expected finished, got %q", last.Transition)
	}
	if last.Session.State != "finished" || last.Session.Summary == nil {
		t.Fatalf("expected summary once finished, got %+v", last.Session)
	}
	if last.Session.Summary.TotalAnswered != 3 || last.Session.Summary.TotalCorrect != 0 {
		t.Errorf("unexpected summary %+v", last.Session.Summary)
	}

	rec := do(t, h, http.MethodPost, base+"/answers", `{"answer":"Cat"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("submit after finish: expected 409, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, base+"/summary", "")
	sum := decode[api.SummaryResponse](t, rec)
	if sum.Accuracy != 0 {
		t.Errorf("expected 0 accuracy, got %v", sum.Accuracy)
	}
}

func TestResetSession(t *testing.T) {
	h := newServer(t, zoo)
	sess := createSession(t, h, "cn_to_en_choice")
	base := "/sessions/" + sess.ID

	do(t, h, http.MethodPost, base+"/answers", `{"answer":"Cat"}`)

	rec := do(t, h, http.MethodPost, base+"/reset", `{"mode":"cn_to_en_typed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decode[api.SessionResponse](t, rec)
	if got.Mode != "cn_to_en_typed" || got.State != "active" {
		t.Errorf("unexpected session after reset %+v", got)
	}
	if got.Question == nil || got.Question.Hint == "" {
		t.Errorf("expected a hint in typed mode, got %+v", got.Question)
	}

	rec = do(t, h, http.MethodPost, base+"/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("restart with empty body: expected 200, got %d", rec.Code)
	}
	if got := decode[api.SessionResponse](t, rec); got.Mode != "cn_to_en_typed" {
		t.Errorf("restart should keep the mode, got %q", got.Mode)
	}

	rec = do(t, h, http.MethodPost, base+"/reset", `{"mode":"bogus"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown mode, got %d", rec.Code)
	}
}

func TestUpdateLearnerAndDelete(t *testing.T) {
	h := newServer(t, zoo)
	sess := createSession(t, h, "cn_to_en_choice")
	base := "/sessions/" + sess.ID

	rec := do(t, h, http.MethodPatch, base+"/learner", `{"name":"林","class":"702","seat":"3"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decode[api.SessionResponse](t, rec); got.Learner.Class != "702" {
		t.Errorf("expected class 702, got %q", got.Learner.Class)
	}

	rec = do(t, h, http.MethodDelete, base, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = do(t, h, http.MethodGet, base, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestReplaceAndListTerms(t *testing.T) {
	h := newServer(t, nil)

	rec := do(t, h, http.MethodPut, "/terms",
		`{"terms":[{"name":" 獅 ","english":"Lion"},{"name":"","english":"Ghost"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/terms", "")
	got := decode[api.TermsResponse](t, rec)
	if got.Count != 1 || got.Terms[0].Name != "獅" {
		t.Errorf("expected [獅/Lion], got %+v", got)
	}

	rec = do(t, h, http.MethodPut, "/terms", `{"terms":[{"name":"","english":""}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 when nothing survives, got %d", rec.Code)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newServer(t, zoo)
	rec := do(t, src, http.MethodGet, "/terms/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	exported := rec.Body.String()

	dst := newServer(t, nil)
	rec = do(t, dst, http.MethodPost, "/terms/import", exported)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if res := decode[api.ImportResult](t, rec); res.TermsImported != 3 {
		t.Errorf("expected 3 imported, got %d", res.TermsImported)
	}

	rec = do(t, dst, http.MethodGet, "/terms", "")
	if got := decode[api.TermsResponse](t, rec); got.Terms[0].English != "Elephant" {
		t.Errorf("expected order to survive, got %+v", got.Terms)
	}
}

func TestImportUpload_CSV(t *testing.T) {
	h := newServer(t, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "zoo.csv")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	io.WriteString(part, "中文,英文\n熊,Bear\n,Nobody\n")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/terms/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if res := decode[api.ImportResult](t, rec); res.TermsImported != 1 {
		t.Errorf("expected 1 imported, got %+v", res)
	}
}

func TestChain_SetsCORSHeaders(t *testing.T) {
	h := newServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/modes", nil)
	req.Header.Set("Origin", "http://classroom.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS header")
	}
}
