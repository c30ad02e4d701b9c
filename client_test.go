package casedex

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithTimeout(5*time.Second))
}

func TestClientSearch_RoundTrip(t *testing.T) {
	var gotPath, gotMethod string
	var gotReq SearchRequest

	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(SearchResponse{
			Cases:      []CaseRecord{{ID: "abc", Title: "处罚公开表"}},
			Total:      1,
			Page:       1,
			PageSize:   20,
			TotalPages: 1,
		})
	})

	resp, err := NewSearch().
		Industry("银行").
		MinPenalty(500000).
		Between("2021-01-01", "2021-12-31").
		Page(1).
		Do(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/api/v1/cases/search" {
		t.Errorf("unexpected call %s %s", gotMethod, gotPath)
	}
	if gotReq.Industry != "银行" || gotReq.MinPenalty != 500000 || gotReq.StartDate != "2021-01-01" {
		t.Errorf("request not carried: %+v", gotReq)
	}
	if gotReq.Page == nil || *gotReq.Page != 1 {
		t.Errorf("page not carried: %+v", gotReq.Page)
	}
	if resp.Total != 1 || resp.Cases[0].Title != "处罚公开表" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestClientCase_RoundTrip(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/cases/665f1f77bcf86cd799439011" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(CaseRecord{ID: "665f1f77bcf86cd799439011", Amount: 3000})
	})

	rec, err := c.Case(context.Background(), "665f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Amount != 3000 {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestClient_DecodesAPIError(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"case_not_found","message":"case not found"}`))
	})

	_, err := c.Case(context.Background(), "665f1f77bcf86cd799439011")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Code != "case_not_found" {
		t.Errorf("unexpected APIError %+v", apiErr)
	}
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := c.Stats(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Code != "unknown" {
		t.Errorf("unexpected APIError %+v", apiErr)
	}
}

func TestClientHealth_UnavailableStillReturnsReport(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"error","checks":{"database":"error"}}`))
	})

	report, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != "error" || report.Checks["database"] != "error" {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestClientStats_RoundTrip(t *testing.T) {
	c := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Stats{
			Provinces: []StatBucket{{Label: "广东省", Count: 12}},
		})
	})

	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.Provinces) != 1 || stats.Provinces[0].Label != "广东省" {
		t.Errorf("unexpected stats %+v", stats)
	}
}
