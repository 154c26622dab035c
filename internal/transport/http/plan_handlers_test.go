package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type stubPlanService struct {
	previews int
}

func (s *stubPlanService) GeneratePreview(domain.Questionnaire) domain.RiskPlan {
	s.previews++
	return domain.RiskPlan{}
}

func (s *stubPlanService) GenerateForUser(context.Context, int64, domain.Questionnaire) (domain.RiskPlan, error) {
	return domain.RiskPlan{}, nil
}

func (s *stubPlanService) GetPlan(context.Context, int64) (domain.StoredRiskPlan, error) {
	return domain.StoredRiskPlan{}, nil
}

func postJSON(t *testing.T, r *Router, path, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.App().Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(payload)
}

func TestGeneratePlanPreviewRejectsEmptySubmission(t *testing.T) {
	plans := &stubPlanService{}
	router := New(Deps{Plans: plans})

	status, body := postJSON(t, router, "/api/generate-plan", `{}`)
	if status != 422 {
		t.Fatalf("status = %d, want 422", status)
	}
	for _, field := range []string{"trades_per_day", "trading_session", "prop_firm", "account_type", "account_size"} {
		if !strings.Contains(body, field) {
			t.Errorf("body missing field %q: %s", field, body)
		}
	}
	if plans.previews != 0 {
		t.Fatalf("generator called %d times on rejected input", plans.previews)
	}
}

func TestGeneratePlanPreviewRejectsMissingField(t *testing.T) {
	plans := &stubPlanService{}
	router := New(Deps{Plans: plans})

	// account_size absent, everything else present.
	body := `{
		"trades_per_day": "1-2",
		"trading_session": "london",
		"prop_firm": "FTMO",
		"account_type": "FTMO Challenge (Standard)"
	}`

	status, resp := postJSON(t, router, "/api/generate-plan", body)
	if status != 422 {
		t.Fatalf("status = %d, want 422", status)
	}
	if !strings.Contains(resp, "account_size") {
		t.Errorf("body should name the missing field: %s", resp)
	}
	if strings.Contains(resp, "prop_firm") {
		t.Errorf("body should not name fields that were present: %s", resp)
	}
}

func TestGeneratePlanPreviewAcceptsCompleteSubmission(t *testing.T) {
	plans := &stubPlanService{}
	router := New(Deps{Plans: plans})

	body := `{
		"trades_per_day": "1-2",
		"trading_session": "london",
		"prop_firm": "FTMO",
		"account_type": "FTMO Challenge (Standard)",
		"account_size": 10000
	}`

	status, _ := postJSON(t, router, "/api/generate-plan", body)
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if plans.previews != 1 {
		t.Fatalf("generator called %d times, want 1", plans.previews)
	}
}

func TestValidateQuestionnaireWhitespaceOnly(t *testing.T) {
	q := domain.Questionnaire{
		TradesPerDay:   "  ",
		TradingSession: "london",
		PropFirm:       "FTMO",
		AccountType:    "FTMO Challenge (Standard)",
		AccountSize:    10000.0,
	}
	if err := validateQuestionnaire(q); err == nil {
		t.Fatal("whitespace-only trades_per_day should be rejected")
	}
}
