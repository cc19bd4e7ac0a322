// Package wellarch scores an architecture against a fixed six-pillar
// best-practices checklist modeled on the AWS Well-Architected Framework.
// Every rule is a pure predicate over the architecture record; scoring a
// given architecture twice always produces identical results.
package wellarch

import (
	"math"
	"time"

	"github.com/bgdnvk/archlens/internal/model"
)

// Rule is one boolean check inside a question. Check must tolerate partial
// input: the validator normalizes the architecture before evaluation, and
// predicates only read fields, never mutate them.
type Rule struct {
	ID          string
	Description string
	Severity    model.Severity
	Title       string
	Guidance    string
	References  []string
	Check       func(*model.Architecture) bool
}

// Question groups rules under a named check with a fixed integer weight.
// Each passing rule contributes the full question weight.
type Question struct {
	ID     string
	Title  string
	Weight int
	Rules  []Rule
}

// pillarDef is the immutable definition of one pillar.
type pillarDef struct {
	Name        string
	Description string
	Questions   []Question
}

// Recommendation is one actionable finding produced by a failed rule.
type Recommendation struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Severity           model.Severity `json:"severity"`
	Pillar             string         `json:"pillar"`
	AffectedComponents []string       `json:"affected_components"`
	Guidance           string         `json:"guidance"`
	References         []string       `json:"references"`
}

// PillarResult is the per-pillar outcome of one validation run.
type PillarResult struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Score           float64          `json:"score"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Report is the aggregate outcome of one validation run. OverallScore is
// always the unweighted mean of the six pillar scores, rounded.
type Report struct {
	OverallScore               float64                     `json:"overall_score"`
	Pillars                    []PillarResult              `json:"pillars"`
	CriticalIssues             []Recommendation            `json:"critical_issues"`
	HighRiskIssues             []Recommendation            `json:"high_risk_issues"`
	MediumRiskIssues           []Recommendation            `json:"medium_risk_issues"`
	LowRiskIssues              []Recommendation            `json:"low_risk_issues"`
	RecommendationsByComponent map[string][]Recommendation `json:"recommendations_by_component"`
	Timestamp                  time.Time                   `json:"timestamp"`
}

// Validator evaluates the six pillars. The pillar definitions are built once
// at construction and never mutated, so one validator is safe for concurrent
// use.
type Validator struct {
	pillars []pillarDef
}

// NewValidator returns a validator with the built-in pillar rule set.
func NewValidator() *Validator {
	return &Validator{
		pillars: []pillarDef{
			operationalExcellencePillar(),
			securityPillar(),
			reliabilityPillar(),
			performancePillar(),
			costOptimizationPillar(),
			sustainabilityPillar(),
		},
	}
}

// Validate scores the architecture against every pillar. A nil or partial
// architecture is tolerated: missing fields default to empty before any
// predicate runs, and no rule ever panics on absent data.
func (v *Validator) Validate(arch *model.Architecture) *Report {
	normalized := normalize(arch)

	report := &Report{
		Pillars:                    []PillarResult{},
		CriticalIssues:             []Recommendation{},
		HighRiskIssues:             []Recommendation{},
		MediumRiskIssues:           []Recommendation{},
		LowRiskIssues:              []Recommendation{},
		RecommendationsByComponent: make(map[string][]Recommendation),
		Timestamp:                  time.Now().UTC(),
	}

	affected := normalized.AWSComponentNames()

	var scoreSum float64
	for _, def := range v.pillars {
		result := v.evaluatePillar(def, normalized, affected, report)
		report.Pillars = append(report.Pillars, result)
		scoreSum += result.Score
	}

	if len(report.Pillars) > 0 {
		report.OverallScore = math.Round(scoreSum / float64(len(report.Pillars)))
	}

	return report
}

// evaluatePillar runs every rule of every question. Failing rules add zero
// achieved weight and emit one recommendation each; the accumulation is
// append-only.
func (v *Validator) evaluatePillar(def pillarDef, arch *model.Architecture, affected []string, report *Report) PillarResult {
	result := PillarResult{
		Name:            def.Name,
		Description:     def.Description,
		Recommendations: []Recommendation{},
	}

	totalWeight := 0
	achievedWeight := 0

	for _, q := range def.Questions {
		for _, rule := range q.Rules {
			totalWeight += q.Weight
			if rule.Check(arch) {
				achievedWeight += q.Weight
				continue
			}

			rec := Recommendation{
				ID:                 rule.ID,
				Title:              rule.Title,
				Description:        rule.Description,
				Severity:           rule.Severity,
				Pillar:             def.Name,
				AffectedComponents: affected,
				Guidance:           rule.Guidance,
				References:         rule.References,
			}

			result.Recommendations = append(result.Recommendations, rec)
			bucket(report, rec)
			for _, name := range affected {
				report.RecommendationsByComponent[name] = append(report.RecommendationsByComponent[name], rec)
			}
		}
	}

	if totalWeight > 0 {
		result.Score = math.Round(float64(achievedWeight) / float64(totalWeight) * 100)
	}

	return result
}

func bucket(report *Report, rec Recommendation) {
	switch rec.Severity {
	case model.SeverityCritical:
		report.CriticalIssues = append(report.CriticalIssues, rec)
	case model.SeverityHigh:
		report.HighRiskIssues = append(report.HighRiskIssues, rec)
	case model.SeverityMedium:
		report.MediumRiskIssues = append(report.MediumRiskIssues, rec)
	case model.SeverityLow:
		report.LowRiskIssues = append(report.LowRiskIssues, rec)
	}
}

// normalize returns a defensive copy with every nil slice replaced by an
// empty one. The caller's architecture is never touched.
func normalize(arch *model.Architecture) *model.Architecture {
	if arch == nil {
		arch = &model.Architecture{}
	}
	copied := *arch
	copied.Normalize()
	return &copied
}
