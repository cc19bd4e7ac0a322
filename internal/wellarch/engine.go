package wellarch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bgdnvk/archlens/internal/model"
)

// Result wraps a validation report with severity partitions and a rendered
// text report. Issues carry critical and high findings, warnings carry
// medium, recommendations carry low.
type Result struct {
	Report          *Report            `json:"report"`
	Issues          []Recommendation   `json:"issues"`
	Warnings        []Recommendation   `json:"warnings"`
	Recommendations []Recommendation   `json:"recommendations"`
	OverallScore    float64            `json:"overall_score"`
	PillarScores    map[string]float64 `json:"pillar_scores"`
	DetailedReport  string             `json:"detailed_report"`
}

// Engine runs the validator and partitions its output for callers that want
// issue lists rather than severity buckets. It adds no scoring logic of its
// own.
type Engine struct {
	validator *Validator
}

// NewEngine returns an engine around a fresh validator.
func NewEngine() *Engine {
	return &Engine{validator: NewValidator()}
}

// Evaluate validates the architecture and assembles the wrapped result.
func (e *Engine) Evaluate(arch *model.Architecture) *Result {
	report := e.validator.Validate(arch)

	issues := []Recommendation{}
	issues = append(issues, report.CriticalIssues...)
	issues = append(issues, report.HighRiskIssues...)

	warnings := make([]Recommendation, len(report.MediumRiskIssues))
	copy(warnings, report.MediumRiskIssues)

	recommendations := make([]Recommendation, len(report.LowRiskIssues))
	copy(recommendations, report.LowRiskIssues)

	pillarScores := make(map[string]float64, len(report.Pillars))
	for _, p := range report.Pillars {
		pillarScores[p.Name] = p.Score
	}

	return &Result{
		Report:          report,
		Issues:          issues,
		Warnings:        warnings,
		Recommendations: recommendations,
		OverallScore:    report.OverallScore,
		PillarScores:    pillarScores,
		DetailedReport:  renderDetailedReport(report),
	}
}

// renderDetailedReport flattens the report into a readable text document:
// summary counts, per-pillar scores, critical and high findings, findings
// grouped by component, and closing improvement suggestions.
func renderDetailedReport(report *Report) string {
	var b strings.Builder

	b.WriteString("Well-Architected Review\n")
	b.WriteString("=======================\n\n")
	b.WriteString(fmt.Sprintf("Overall score: %.0f/100\n", report.OverallScore))
	b.WriteString(fmt.Sprintf("Findings: %d critical, %d high, %d medium, %d low\n\n",
		len(report.CriticalIssues),
		len(report.HighRiskIssues),
		len(report.MediumRiskIssues),
		len(report.LowRiskIssues)))

	b.WriteString("Pillar Scores\n")
	b.WriteString("-------------\n")
	for _, p := range report.Pillars {
		b.WriteString(fmt.Sprintf("  %-25s %3.0f/100\n", p.Name, p.Score))
	}
	b.WriteString("\n")

	if len(report.CriticalIssues) > 0 {
		b.WriteString("Critical Issues\n")
		b.WriteString("---------------\n")
		for _, rec := range report.CriticalIssues {
			writeFinding(&b, rec)
		}
		b.WriteString("\n")
	}

	if len(report.HighRiskIssues) > 0 {
		b.WriteString("High Risk Issues\n")
		b.WriteString("----------------\n")
		for _, rec := range report.HighRiskIssues {
			writeFinding(&b, rec)
		}
		b.WriteString("\n")
	}

	if len(report.RecommendationsByComponent) > 0 {
		b.WriteString("Findings by Component\n")
		b.WriteString("---------------------\n")
		names := make([]string, 0, len(report.RecommendationsByComponent))
		for name := range report.RecommendationsByComponent {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			recs := report.RecommendationsByComponent[name]
			b.WriteString(fmt.Sprintf("  %s (%d findings)\n", name, len(recs)))
			for _, rec := range recs {
				b.WriteString(fmt.Sprintf("    - [%s] %s\n", rec.Severity, rec.Title))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("Next Steps\n")
	b.WriteString("----------\n")
	b.WriteString("  1. Resolve critical findings before deploying to production.\n")
	b.WriteString("  2. Schedule high risk findings into the next development cycle.\n")
	b.WriteString("  3. Re-run the review after changes; scores are deterministic, so deltas are meaningful.\n")

	return b.String()
}

func writeFinding(b *strings.Builder, rec Recommendation) {
	b.WriteString(fmt.Sprintf("  [%s] %s (%s)\n", strings.ToUpper(string(rec.Severity)), rec.Title, rec.Pillar))
	b.WriteString(fmt.Sprintf("      %s\n", rec.Description))
	if rec.Guidance != "" {
		b.WriteString(fmt.Sprintf("      Guidance: %s\n", rec.Guidance))
	}
	if len(rec.AffectedComponents) > 0 {
		b.WriteString(fmt.Sprintf("      Affects: %s\n", strings.Join(rec.AffectedComponents, ", ")))
	}
}
