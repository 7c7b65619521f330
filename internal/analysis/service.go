// Package analysis orchestrates one analysis request: it invokes the
// external engine when possible and otherwise substitutes the synthetic
// demo result set, returning a uniform result envelope either way.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"agrisight-backend/internal/results"
	"agrisight-backend/internal/shared/metrics"
	"agrisight-backend/internal/shared/telemetry"
)

// DemoGenerator produces the synthetic report and map set in the results
// directory.
type DemoGenerator interface {
	Generate() (string, error)
}

// Service decides, per request, between real-engine execution and the demo
// fallback. Flags and the engine are resolved once at construction, not
// re-read mid-request.
type Service struct {
	Engine  Engine
	Results *results.Store
	Demo    DemoGenerator

	// DemoForced skips the engine entirely. Strict disables the fallback so
	// a missing or broken engine surfaces as an error.
	DemoForced bool
	Strict     bool
}

// Run executes the orchestration policy and returns the result envelope.
func (s *Service) Run(ctx context.Context) (Result, error) {
	runID := uuid.NewString()

	if s.DemoForced {
		return s.fallback(runID, "")
	}

	if err := s.Engine.Resolve(); err != nil {
		if s.Strict {
			metrics.IncEngineRunFailed()
			return Result{}, err
		}
		prefix := fmt.Sprintf("%s not found on PATH; running in DEMO mode. Set DEMO_MODE=0 and ensure MATLAB_CMD points to a valid MATLAB binary to run the full analysis.\n\n", s.Engine.Name())
		return s.fallback(runID, prefix)
	}

	start := time.Now()
	output, exitCode, runErr := s.Engine.Run(ctx)
	metrics.ObserveEngineDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	if runErr == nil && exitCode == 0 {
		images, err := s.Results.ListPNG()
		if err != nil {
			return Result{}, fmt.Errorf("list result images: %w", err)
		}
		metrics.IncEngineRunReal()
		telemetry.Info("analysis.engine.complete", map[string]any{
			"run_id":      runID,
			"image_count": len(images),
		})
		return Result{RunID: runID, ReportText: output, ImageRefs: images, Mode: ModeReal}, nil
	}

	diag := output
	if runErr != nil {
		if diag != "" && !strings.HasSuffix(diag, "\n") {
			diag += "\n"
		}
		diag += runErr.Error()
	}

	if !s.Strict && (exitCode == notFoundExitCode || notFoundSignature(diag, s.Engine.Name())) {
		prefix := fmt.Sprintf("%s command failed or not found; running in DEMO mode instead. Error details:\n%s\n\n", s.Engine.Name(), diag)
		return s.fallback(runID, prefix)
	}

	metrics.IncEngineRunFailed()
	telemetry.Error("analysis.engine.failed", map[string]any{
		"run_id":    runID,
		"exit_code": exitCode,
	})
	return Result{}, &EngineError{Details: diag}
}

// fallback generates the synthetic result set. The prefix, when non-empty,
// explains why the engine was bypassed; together with Mode it keeps demo
// output distinguishable from real results.
func (s *Service) fallback(runID, prefix string) (Result, error) {
	report, err := s.Demo.Generate()
	if err != nil {
		// Filesystem trouble, not an engine problem: no further fallback.
		return Result{}, fmt.Errorf("generate demo results: %w", err)
	}

	images, err := s.Results.ListPNG()
	if err != nil {
		return Result{}, fmt.Errorf("list result images: %w", err)
	}

	metrics.IncEngineRunDemo()
	telemetry.Info("analysis.demo.complete", map[string]any{
		"run_id":      runID,
		"image_count": len(images),
		"forced":      s.DemoForced,
	})
	return Result{RunID: runID, ReportText: prefix + report, ImageRefs: images, Mode: ModeDemo}, nil
}

func notFoundSignature(diag, engineName string) bool {
	lower := strings.ToLower(diag)
	return strings.Contains(lower, "not found") && strings.Contains(lower, strings.ToLower(engineName))
}
