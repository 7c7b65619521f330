package analysis

import "errors"

// ErrEngineUnavailable reports that the engine command could not be resolved
// on the search path while strict mode forbids the demo fallback.
var ErrEngineUnavailable = errors.New("engine command not resolvable")

// EngineError reports an engine invocation that exited non-zero or timed
// out, with the combined diagnostic output attached. It is never swallowed:
// either the demo fallback explains it in the report prefix, or it surfaces
// to the caller as an engine_failed envelope.
type EngineError struct {
	Details string
}

func (e *EngineError) Error() string {
	return "engine execution failed"
}

const (
	ErrorCodeEngineFailed = "engine_failed"
	ErrorCodeStorage      = "storage_error"
	ErrorCodeInternal     = "internal_error"
)
