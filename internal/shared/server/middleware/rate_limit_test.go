package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitBurstThenRefused(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	r := gin.New()
	r.POST("/api/v1/analysis/run", RateLimit(limiter, RateLimitRule{Rate: 0.2, Burst: 2}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/run", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis/run", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}

	var body struct {
		Error        string `json:"error"`
		RetryAfterMs int    `json:"retryAfterMs"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "rate_limited" || body.RetryAfterMs <= 0 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRateLimitRefillsOverTime(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if ok, _ := limiter.Allow("client", rule); !ok {
		t.Fatalf("first request should pass")
	}
	if ok, _ := limiter.Allow("client", rule); ok {
		t.Fatalf("second immediate request should be refused")
	}

	now = now.Add(2 * time.Second)
	if ok, _ := limiter.Allow("client", rule); !ok {
		t.Fatalf("request after refill should pass")
	}
}

func TestRateLimitZeroRuleAllowsAll(t *testing.T) {
	limiter := NewRateLimiter(nil)
	for i := 0; i < 10; i++ {
		if ok, _ := limiter.Allow("client", RateLimitRule{}); !ok {
			t.Fatalf("zero rule must not limit")
		}
	}
}
