package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ayonne-skin/internal/catalog"
	"ayonne-skin/internal/domain"
	"ayonne-skin/internal/repository"
	"ayonne-skin/internal/service"
	"ayonne-skin/internal/vision"
)

type memAnalysisRepo struct {
	records []domain.AnalysisRecord
}

func (m *memAnalysisRepo) Create(ctx context.Context, rec domain.AnalysisRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *memAnalysisRepo) GetByID(ctx context.Context, id string) (domain.AnalysisRecord, error) {
	for _, rec := range m.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.AnalysisRecord{}, repository.ErrAnalysisNotFound
}

func (m *memAnalysisRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.AnalysisRecord, error) {
	var out []domain.AnalysisRecord
	for _, rec := range m.records {
		if rec.CustomerID == customerID && rec.Status == domain.AnalysisStatusCompleted {
			out = append(out, rec)
		}
	}
	return out, nil
}

type memSettingsRepo struct {
	goals map[string]domain.SkinGoal
}

func (m *memSettingsRepo) GetGoal(ctx context.Context, customerID string) (domain.SkinGoal, error) {
	if goal, ok := m.goals[customerID]; ok {
		return goal, nil
	}
	return domain.GoalBalanced, nil
}

func (m *memSettingsRepo) SetGoal(ctx context.Context, customerID string, goal domain.SkinGoal) error {
	if m.goals == nil {
		m.goals = make(map[string]domain.SkinGoal)
	}
	m.goals[customerID] = goal
	return nil
}

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(key string) bool { return false }

type apiFixture struct {
	router   *gin.Engine
	token    string
	analyses *memAnalysisRepo
	settings *memSettingsRepo
}

func newAPIFixture(t *testing.T, visionClient vision.Client, limiter service.AnalysisRateLimiter) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	logger := zap.NewNop()
	analyses := &memAnalysisRepo{}
	settings := &memSettingsRepo{}

	analysisSvc := service.NewAnalysisService(visionClient, analyses, settings, cat, logger)
	forecastSvc := service.NewForecastService(analyses, settings, cat, nil, time.Hour, logger)

	jwtSvc := service.NewJWTService("test-secret", time.Hour)
	token, err := jwtSvc.IssueAccessToken("customer-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	router := NewRouter(
		logger,
		jwtSvc,
		NewAnalysisHandler(logger, analysisSvc, limiter),
		NewForecastHandler(logger, forecastSvc),
		NewSettingsHandler(logger, settings),
	)

	return &apiFixture{router: router, token: token, analyses: analyses, settings: settings}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealthzIsPublic(t *testing.T) {
	f := newAPIFixture(t, &vision.MockClient{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCreateAnalysisFlow(t *testing.T) {
	visionClient := &vision.MockClient{
		Detection: vision.Detection{
			SkinType: "combination",
			Conditions: []vision.RawCondition{
				{Name: "Acne", Confidence: 0.8},
				{Name: "Dryness", Confidence: 0.4},
			},
		},
	}
	f := newAPIFixture(t, visionClient, nil)

	w := f.do(t, http.MethodPost, "/analysis", gin.H{"image_url": "https://cdn.example.com/selfie.jpg"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Analysis domain.AnalysisRecord `json:"analysis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Analysis.ID == "" {
		t.Fatal("expected analysis id")
	}
	if resp.Analysis.Status != domain.AnalysisStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", resp.Analysis.Status)
	}

	// El registro recién creado debe ser consultable y pertenecer al
	// cliente autenticado.
	w = f.do(t, http.MethodGet, "/analysis/"+resp.Analysis.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}

	var detail struct {
		QualityScore int                `json:"quality_score"`
		SkinAge      int                `json:"skin_age"`
		Categories   map[string]float64 `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("unmarshal detail: %v", err)
	}
	if detail.QualityScore <= 0 || detail.QualityScore > 100 {
		t.Fatalf("quality score out of range: %d", detail.QualityScore)
	}
	if detail.SkinAge < 18 || detail.SkinAge > 90 {
		t.Fatalf("skin age out of range: %d", detail.SkinAge)
	}
	if len(detail.Categories) == 0 {
		t.Fatal("expected category breakdown")
	}
}

func TestCreateAnalysisInvalidBody(t *testing.T) {
	f := newAPIFixture(t, &vision.MockClient{}, nil)

	w := f.do(t, http.MethodPost, "/analysis", gin.H{"wrong": "field"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateAnalysisRateLimited(t *testing.T) {
	f := newAPIFixture(t, &vision.MockClient{}, denyAllLimiter{})

	w := f.do(t, http.MethodPost, "/analysis", gin.H{"image_url": "https://cdn.example.com/selfie.jpg"})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if len(f.analyses.records) != 0 {
		t.Fatalf("expected no records, got %d", len(f.analyses.records))
	}
}

func TestGetAnalysisOtherCustomerHidden(t *testing.T) {
	f := newAPIFixture(t, &vision.MockClient{}, nil)
	f.analyses.records = append(f.analyses.records, domain.AnalysisRecord{
		ID:         "someone-elses",
		CustomerID: "customer-2",
		Status:     domain.AnalysisStatusCompleted,
	})

	w := f.do(t, http.MethodGet, "/analysis/someone-elses", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestForecastWithoutHistory(t *testing.T) {
	f := newAPIFixture(t, &vision.MockClient{}, nil)

	w := f.do(t, http.MethodGet, "/forecast", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without history, got %d", w.Code)
	}
}

func TestForecastAfterAnalysis(t *testing.T) {
	visionClient := &vision.MockClient{
		Detection: vision.Detection{
			SkinType:   "oily",
			Conditions: []vision.RawCondition{{Name: "Acne", Confidence: 0.8}},
		},
	}
	f := newAPIFixture(t, visionClient, nil)

	if w := f.do(t, http.MethodPost, "/analysis", gin.H{"image_url": "https://cdn.example.com/a.jpg"}); w.Code != http.StatusCreated {
		t.Fatalf("seed analysis failed: %d", w.Code)
	}

	w := f.do(t, http.MethodGet, "/forecast", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Forecast domain.ForecastProjection `json:"forecast"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal forecast: %v", err)
	}
	if len(resp.Forecast.ConditionProjections) != 1 {
		t.Fatalf("expected 1 condition projection, got %d", len(resp.Forecast.ConditionProjections))
	}
}

func TestGoalRoundTrip(t *testing.T) {
	f := newAPIFixture(t, &vision.MockClient{}, nil)

	// Sin meta guardada el default es BALANCED.
	w := f.do(t, http.MethodGet, "/settings/goal", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got struct {
		Goal domain.SkinGoal `json:"goal"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal goal: %v", err)
	}
	if got.Goal != domain.GoalBalanced {
		t.Fatalf("expected BALANCED default, got %s", got.Goal)
	}

	if w := f.do(t, http.MethodPut, "/settings/goal", gin.H{"goal": "clear_blemishes"}); w.Code != http.StatusOK {
		t.Fatalf("expected 200 on set, got %d (body %s)", w.Code, w.Body.String())
	}

	w = f.do(t, http.MethodGet, "/settings/goal", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal goal: %v", err)
	}
	if got.Goal != domain.GoalClearBlemishes {
		t.Fatalf("expected CLEAR_BLEMISHES, got %s", got.Goal)
	}
}

func TestSetGoalUnknown(t *testing.T) {
	f := newAPIFixture(t, &vision.MockClient{}, nil)

	w := f.do(t, http.MethodPut, "/settings/goal", gin.H{"goal": "GLOW_UP"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown goal, got %d", w.Code)
	}
}
