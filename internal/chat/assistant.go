// Package chat answers free-text questions against a previously generated
// analysis report using rule-based keyword dispatch and section extraction.
package chat

import (
	"fmt"
	"regexp"
	"strings"
)

// Fixed replies. The two empty-context messages are distinct so the UI can
// hint at the profit feature specifically.
const (
	replyNoContextProfit = "I can only calculate potential profit after an analysis has been run. Please run the analysis first."
	replyNoContext       = "I don't have any analysis results to work with yet. Please click 'Run Analysis' first."
	replyCapabilities    = "I can answer questions about crop health, soil conditions, pest risk, and potential profit. What would you like to know?"

	replyMissingCropHealth      = "I couldn't find the Crop Health section in the analysis."
	replyMissingSoilCondition   = "I couldn't find the Soil Condition section in the analysis."
	replyMissingPestRisk        = "I couldn't find the Pest Risk section in the analysis."
	replyMissingRecommendations = "I couldn't find any recommendations in the analysis."
)

var (
	healthStatusRe = regexp.MustCompile(`(?i)Overall Crop Health Status:\s*(\w+)`)
	pestLevelRe    = regexp.MustCompile(`(?i)Overall Pest Risk Level:\s*(\w+)`)
)

// Assistant is the rule-based report query engine.
type Assistant struct{}

// Answer resolves a question against the report text. Dispatch is
// first-match-wins in a fixed order, so a question mentioning both profit
// and pests takes the profit path.
func (a *Assistant) Answer(question, report string) string {
	q := strings.ToLower(question)

	if report == "" {
		if strings.Contains(q, "profit") {
			return replyNoContextProfit
		}
		return replyNoContext
	}

	switch {
	case strings.Contains(q, "profit"):
		return estimateProfit(report)
	case strings.Contains(q, "crop health"):
		return sectionOrMissing(report, SectionCropHealth, replyMissingCropHealth)
	case strings.Contains(q, "soil"), strings.Contains(q, "moisture"):
		return sectionOrMissing(report, SectionSoilCondition, replyMissingSoilCondition)
	case strings.Contains(q, "pest"):
		return sectionOrMissing(report, SectionPestRisk, replyMissingPestRisk)
	case strings.Contains(q, "recommendations"):
		return sectionOrMissing(report, SectionRecommendations, replyMissingRecommendations)
	}
	return replyCapabilities
}

func sectionOrMissing(report, title, missing string) string {
	sections := parseSections(report)
	body, ok := sections[title]
	if !ok || body == "" {
		return missing
	}
	return body
}

// estimateProfit derives a rough per-unit-area profit figure from the two
// headline categories. An unextractable category is "unknown" and leaves the
// base value unadjusted.
func estimateProfit(report string) string {
	health := extractCategory(healthStatusRe, report)
	pest := extractCategory(pestLevelRe, report)

	profit := 1000.0

	switch health {
	case "good":
		profit *= 1.2
	case "moderate":
		profit *= 0.9
	case "poor":
		profit *= 0.6
	}

	switch pest {
	case "low":
		profit *= 1.1
	case "medium":
		profit *= 0.8
	case "high":
		profit *= 0.5
	}

	return fmt.Sprintf("Based on the analysis, the estimated potential profit is around $%d per unit area. This is an estimate based on crop health and pest risk.", int(profit))
}

func extractCategory(re *regexp.Regexp, report string) string {
	m := re.FindStringSubmatch(report)
	if m == nil {
		return "unknown"
	}
	return strings.ToLower(m[1])
}
