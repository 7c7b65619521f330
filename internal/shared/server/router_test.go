package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrisight-backend/internal/shared/config"
)

func newDemoRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		ResultsDir:      t.TempDir(),
		DemoMode:        true,
		EngineCmd:       "matlab",
		EngineDir:       ".",
	}
	return NewRouter(cfg)
}

func TestRouterHealth(t *testing.T) {
	router := newDemoRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRouterDemoRunAndImageRetrieval(t *testing.T) {
	router := newDemoRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/run", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("run expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Images []string `json:"images"`
		Mode   string   `json:"mode"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode run response: %v", err)
	}
	if body.Mode != "demo" {
		t.Fatalf("mode = %q, want demo", body.Mode)
	}
	if len(body.Images) < 9 {
		t.Fatalf("expected at least 9 images, got %v", body.Images)
	}

	imgReq := httptest.NewRequest(http.MethodGet, body.Images[0], nil)
	imgResp := httptest.NewRecorder()
	router.ServeHTTP(imgResp, imgReq)

	if imgResp.Code != http.StatusOK {
		t.Fatalf("image fetch expected 200, got %d", imgResp.Code)
	}
	if ct := imgResp.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	if imgResp.Body.Len() == 0 {
		t.Fatalf("expected image bytes")
	}
}

func TestRouterUnknownImageNotFound(t *testing.T) {
	router := newDemoRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/results/missing_map.png", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	router := newDemoRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "engine_runs_demo_total") {
		t.Fatalf("metrics output missing counters:\n%s", resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":7000": ":7000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
