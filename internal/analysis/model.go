package analysis

// Mode reports which path produced an analysis result.
type Mode string

const (
	ModeReal Mode = "real"
	ModeDemo Mode = "demo"
)

// Result is the envelope returned for one orchestrated analysis run. It is
// immutable after creation; the caller keeps it as chat context for the
// session. ImageRefs lists the PNG files present in the results directory
// when the run finished, sorted by name.
type Result struct {
	RunID      string
	ReportText string
	ImageRefs  []string
	Mode       Mode
}
