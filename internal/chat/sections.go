package chat

import "strings"

// Canonical report section titles in their fixed order.
const (
	SectionExecutiveSummary = "EXECUTIVE SUMMARY"
	SectionCropHealth       = "CROP HEALTH ANALYSIS"
	SectionSoilCondition    = "SOIL CONDITION ANALYSIS"
	SectionPestRisk         = "PEST RISK ANALYSIS"
	SectionRecommendations  = "RECOMMENDATIONS"
)

var sectionOrder = []string{
	SectionExecutiveSummary,
	SectionCropHealth,
	SectionSoilCondition,
	SectionPestRisk,
	SectionRecommendations,
}

type sectionSpan struct {
	title       string
	headerStart int
	bodyStart   int
}

// parseSections scans the report once for the canonical section headers
// (title line followed by a full-width = underline) and returns each found
// section's trimmed body. A title mentioned in running text does not match:
// only the exact header format counts. Absent sections are simply missing
// from the result.
func parseSections(report string) map[string]string {
	var spans []sectionSpan
	cursor := 0
	for _, title := range sectionOrder {
		headerStart, bodyStart := findHeader(report, title, cursor)
		if headerStart < 0 {
			continue
		}
		spans = append(spans, sectionSpan{title: title, headerStart: headerStart, bodyStart: bodyStart})
		cursor = bodyStart
	}

	sections := make(map[string]string, len(spans))
	for i, span := range spans {
		end := len(report)
		if i+1 < len(spans) {
			end = spans[i+1].headerStart
		}
		sections[span.title] = strings.TrimSpace(report[span.bodyStart:end])
	}
	return sections
}

// findHeader locates the first occurrence of title at or after from that
// starts a line and is immediately underlined by len(title) = characters.
// It returns the header's start offset and the offset just past the
// underline line, or (-1, -1) when no such header exists.
func findHeader(report, title string, from int) (int, int) {
	underline := strings.Repeat("=", len(title))
	search := from
	for search <= len(report) {
		idx := strings.Index(report[search:], title)
		if idx < 0 {
			return -1, -1
		}
		idx += search
		search = idx + 1

		if idx > 0 && report[idx-1] != '\n' {
			continue
		}
		rest := report[idx+len(title):]
		rest = strings.TrimPrefix(rest, "\r")
		if !strings.HasPrefix(rest, "\n") {
			continue
		}
		rest = rest[1:]
		if !strings.HasPrefix(rest, underline) {
			continue
		}
		after := rest[len(underline):]
		bodyStart := len(report) - len(after)
		if nl := strings.IndexByte(after, '\n'); nl >= 0 {
			// Reject partial underlines longer than the title.
			line := strings.TrimRight(after[:nl], "\r")
			if strings.ContainsRune(line, '=') {
				continue
			}
			bodyStart += nl + 1
		} else {
			if strings.ContainsRune(after, '=') {
				continue
			}
			bodyStart = len(report)
		}
		return idx, bodyStart
	}
	return -1, -1
}
