package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/fairwaypool/golf-pickem/internal/infrastructure/repository/memory"
	"github.com/fairwaypool/golf-pickem/internal/platform/logging"
	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

const testJobToken = "job-token"

type staticProvider struct {
	earnings []usecase.EarningsRecord
	field    []usecase.FieldGolfer
}

func (p *staticProvider) FetchEarnings(_ context.Context, _ string, _ int) ([]usecase.EarningsRecord, bool, error) {
	return p.earnings, len(p.earnings) > 0, nil
}

func (p *staticProvider) FetchField(_ context.Context, _ string, _ int) ([]usecase.FieldGolfer, error) {
	return p.field, nil
}

func newTestRouter(t *testing.T, provider *staticProvider) http.Handler {
	t.Helper()

	userRepo := memory.NewUserRepository(nil)
	golferRepo := memory.NewGolferRepository(memory.SeedGolfers())
	tournamentRepo := memory.NewTournamentRepository(nil)
	pickRepo := memory.NewPickRepository(nil)
	resultRepo := memory.NewResultRepository(nil)

	handler := NewHandler(
		usecase.NewUserService(userRepo),
		usecase.NewGolferService(golferRepo, tournamentRepo, provider),
		usecase.NewTournamentService(tournamentRepo),
		usecase.NewPickService(userRepo, golferRepo, tournamentRepo, pickRepo),
		usecase.NewScoreboardService(userRepo, golferRepo, tournamentRepo, pickRepo, resultRepo),
		usecase.NewEarningsService(tournamentRepo, resultRepo, provider, logging.NewNop()),
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), []string{"*"}, testJobToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	return body["data"]
}

func TestRouter_RegisterUserTwice(t *testing.T) {
	router := newTestRouter(t, &staticProvider{})

	payload := `{"id":"user-1","displayName":"Pat","email":"pat@example.com"}`
	rec := doRequest(t, router, http.MethodPost, "/v1/users", payload, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201 on first register, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/users", payload, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 on re-register, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_SubmitPicksAndScoreboardFlow(t *testing.T) {
	router := newTestRouter(t, &staticProvider{})

	rec := doRequest(t, router, http.MethodPost, "/v1/users",
		`{"id":"user-1","displayName":"Pat","email":"pat@example.com"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register user: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/tournaments",
		`{"id":"900","name":"Test Invitational","year":2030,"submissionStart":"2030-01-06T00:00:00Z","submissionEnd":"2030-01-09T23:59:59Z"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create tournament: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/picks",
		`{"userId":"user-1","tournamentId":"900","golferIds":["46046","52955","47483"]}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit picks: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/users/user-1/tournaments/900/picks", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get picks: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	picks, ok := decodeData(t, rec).([]any)
	if !ok || len(picks) != 3 {
		t.Fatalf("expected 3 picks in response, got %v", picks)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/tournaments/900/earnings",
		`{"tournId":"900","year":2030,"leaderboard":[
			{"playerId":"46046","firstName":"Scottie","lastName":"Scheffler","earnings":{"$numberInt":"5000"}},
			{"playerId":"47483","firstName":"Xander","lastName":"Schauffele","earnings":{"$numberInt":"3000"}}
		]}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("load earnings: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/scoreboard", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("scoreboard: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rows, ok := decodeData(t, rec).([]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("expected 1 scoreboard row, got %v", rows)
	}
	row, _ := rows[0].(map[string]any)
	if score, _ := row["score"].(float64); score != 8000 {
		t.Fatalf("expected score 8000, got %v", row["score"])
	}
}

func TestRouter_SubmitPicksValidation(t *testing.T) {
	router := newTestRouter(t, &staticProvider{})

	// Wrong pick count never reaches the service layer.
	rec := doRequest(t, router, http.MethodPost, "/v1/picks",
		`{"userId":"user-1","tournamentId":"900","golferIds":["46046"]}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short pick list, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/picks", `{"userId":`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_InternalJobsRequireToken(t *testing.T) {
	router := newTestRouter(t, &staticProvider{})

	rec := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sweep-earnings", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sweep-earnings", "",
		map[string]string{"X-Internal-Job-Token": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/internal/jobs/sweep-earnings", "",
		map[string]string{"X-Internal-Job-Token": testJobToken})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_TournamentFieldLazilyAddsGolfers(t *testing.T) {
	provider := &staticProvider{
		field: []usecase.FieldGolfer{
			{ID: "46046", Name: "Scottie Scheffler"},
			{ID: "88888", Name: "Amateur Qualifier"},
		},
	}
	router := newTestRouter(t, provider)

	rec := doRequest(t, router, http.MethodPost, "/v1/tournaments",
		`{"id":"900","name":"Test Invitational","year":2030,"submissionStart":"2030-01-06T00:00:00Z","submissionEnd":"2030-01-09T23:59:59Z"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create tournament: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/tournaments/900/golfers", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("field fetch: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	field, ok := decodeData(t, rec).([]any)
	if !ok || len(field) != 2 {
		t.Fatalf("expected 2 field entries, got %v", field)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/golfers", "", nil)
	golfers, ok := decodeData(t, rec).([]any)
	if !ok {
		t.Fatalf("expected golfer list, got %v", golfers)
	}
	found := false
	for _, g := range golfers {
		item, _ := g.(map[string]any)
		if item["id"] == "88888" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lazily created golfer 88888 in roster")
	}
}
