package analysis

import (
	"errors"
	"testing"
)

func TestBatchEngineResolveMissingCommand(t *testing.T) {
	engine := &BatchEngine{Cmd: "definitely-not-a-real-engine-binary"}

	err := engine.Resolve()
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("expected ErrEngineUnavailable, got %v", err)
	}
}

func TestBatchEngineName(t *testing.T) {
	engine := &BatchEngine{Cmd: "matlab"}

	if engine.Name() != "matlab" {
		t.Fatalf("name = %q", engine.Name())
	}
}

func TestNotFoundSignature(t *testing.T) {
	cases := []struct {
		diag string
		want bool
	}{
		{"/bin/sh: 1: matlab: not found", true},
		{"MATLAB: Not Found on this system", true},
		{"License checkout failed", false},
		{"command not found: octave", false},
	}
	for _, tc := range cases {
		if got := notFoundSignature(tc.diag, "matlab"); got != tc.want {
			t.Fatalf("notFoundSignature(%q) = %v, want %v", tc.diag, got, tc.want)
		}
	}
}
