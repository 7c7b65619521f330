package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"agrisight-backend/internal/analysis"
	"agrisight-backend/internal/chat"
	"agrisight-backend/internal/demo"
	"agrisight-backend/internal/results"
	"agrisight-backend/internal/shared/config"
	"agrisight-backend/internal/shared/metrics"
	"agrisight-backend/internal/shared/server/middleware"
	"agrisight-backend/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := results.New(cfg.ResultsDir)
	generator := demo.NewGenerator(store)
	engine := &analysis.BatchEngine{
		Cmd:       cfg.EngineCmd,
		ScriptDir: cfg.EngineDir,
		Timeout:   cfg.EngineTimeout,
	}
	analysisSvc := &analysis.Service{
		Engine:     engine,
		Results:    store,
		Demo:       generator,
		DemoForced: cfg.DemoMode,
		Strict:     cfg.StrictEngine,
	}
	analysisHandler := analysis.NewHandler(analysisSvc)
	chatHandler := chat.NewHandler(&chat.Assistant{})

	// One engine process at a time per client is plenty.
	runLimit := middleware.RateLimit(middleware.NewRateLimiter(nil), middleware.RateLimitRule{Rate: 0.2, Burst: 2})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	analysisHandler.RegisterRoutes(api, runLimit)
	chatHandler.RegisterRoutes(api)

	r.GET("/results/:name", serveResult(store))

	return r
}

// serveResult streams a rendered raster from the results directory.
func serveResult(store *results.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := store.Open(c.Param("name"))
		if err != nil {
			respond.Error(c, http.StatusNotFound, "not_found", "result image not found", nil)
			return
		}
		defer f.Close()

		c.Header("Content-Type", "image/png")
		c.Status(http.StatusOK)
		_, _ = io.Copy(c.Writer, f)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
