// Package model defines the shared data shapes exchanged between the
// requirements analysis pipeline, the Well-Architected validator, and the
// CLI front end. Everything here is plain data: no field is ever nil in
// serialized output, absent lists are empty lists.
package model

import (
	"math"
	"strings"
)

// Severity classifies findings and recommendations.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ServiceEntry describes one known AWS service in the catalog.
// Entries are built once at startup and never mutated.
type ServiceEntry struct {
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// PatternEntry describes one known architectural pattern.
type PatternEntry struct {
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Services    []string `json:"services" yaml:"services"`
	UseCases    []string `json:"use_cases" yaml:"use_cases"`
	Description string   `json:"description" yaml:"description"`
}

// ServiceMention is a catalog service detected in input text.
type ServiceMention struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// ComponentMention is a generic (non-AWS) component detected in input text,
// e.g. "frontend" or "database". Name holds the literal matched substring.
type ComponentMention struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// RelationshipMention records that a relationship verb family matched.
type RelationshipMention struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// RequirementMention is a non-functional requirement detected in input text.
type RequirementMention struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Entities is the full output of entity extraction for one text.
type Entities struct {
	Services      []ServiceMention      `json:"services"`
	Components    []ComponentMention    `json:"components"`
	Relationships []RelationshipMention `json:"relationships"`
	Requirements  []RequirementMention  `json:"requirements"`
}

// PatternMatch is a candidate architectural pattern recognized in text.
type PatternMatch struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// UseCaseMatch is a workload use case recognized in text.
type UseCaseMatch struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ConstraintMatch is a project constraint recognized in text.
type ConstraintMatch struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// PracticeSignal is a best-practice or anti-pattern signal recognized in text.
type PracticeSignal struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	IsBestPractice bool    `json:"is_best_practice"`
	Confidence     float64 `json:"confidence"`
}

// Intents is the full output of intent recognition for one text.
type Intents struct {
	Patterns    []PatternMatch    `json:"patterns"`
	UseCases    []UseCaseMatch    `json:"use_cases"`
	Constraints []ConstraintMatch `json:"constraints"`
	Practices   []PracticeSignal  `json:"practices"`
}

// Component is one node of an assembled architecture. IsAWSService marks
// components that map to a catalog service.
type Component struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	IsAWSService bool   `json:"is_aws_service"`
}

// ServiceRef is an AWS service referenced by an architecture.
type ServiceRef struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Purpose    string  `json:"purpose"`
	Confidence float64 `json:"confidence"`
}

// Relationship is a detected interaction between architecture parts.
type Relationship struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// Requirement is a non-functional requirement attached to an architecture.
type Requirement struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Constraint is a project constraint attached to an architecture.
type Constraint struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Practice is a best-practice (or anti-pattern) entry on an architecture.
type Practice struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	IsBestPractice bool   `json:"is_best_practice"`
}

// Issue is one validation finding on an assembled architecture.
type Issue struct {
	Type       string   `json:"type"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
	Suggestion string   `json:"suggestion"`
}

// Validation is the block of findings attached to an architecture after the
// consistency checks run.
type Validation struct {
	Errors      []Issue `json:"errors"`
	Warnings    []Issue `json:"warnings"`
	Suggestions []Issue `json:"suggestions"`
	Confidence  float64 `json:"confidence"`
}

// Architecture is the assembled result of analyzing one requirements text.
// It is built once per analysis; only Confidence and Validation are updated
// afterwards, by the consistency checks.
type Architecture struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	Components    []Component     `json:"components"`
	Services      []ServiceRef    `json:"services"`
	Relationships []Relationship  `json:"relationships"`
	Requirements  []Requirement   `json:"requirements"`
	Constraints   []Constraint    `json:"constraints"`
	Patterns      []PatternMatch  `json:"patterns"`
	BestPractices []Practice      `json:"best_practices"`
	Confidence    float64         `json:"confidence"`
	Validation    *Validation     `json:"validation,omitempty"`
}

// FallbackArchitecture returns the fixed low-confidence record callers
// substitute when analysis fails. Every list is empty, never nil.
func FallbackArchitecture() *Architecture {
	return &Architecture{
		Name:          "AWS Architecture Solution",
		Description:   "Basic AWS architecture based on requirements",
		Type:          "General AWS Architecture",
		Components:    []Component{},
		Services:      []ServiceRef{},
		Relationships: []Relationship{},
		Requirements:  []Requirement{},
		Constraints:   []Constraint{},
		Patterns:      []PatternMatch{},
		BestPractices: []Practice{},
		Confidence:    0.3,
		Validation: &Validation{
			Errors:      []Issue{},
			Warnings:    []Issue{},
			Suggestions: []Issue{},
			Confidence:  0.3,
		},
	}
}

// Normalize replaces nil slices with empty ones so user-supplied or partial
// architectures can be evaluated without nil checks at every access.
func (a *Architecture) Normalize() {
	if a.Components == nil {
		a.Components = []Component{}
	}
	if a.Services == nil {
		a.Services = []ServiceRef{}
	}
	if a.Relationships == nil {
		a.Relationships = []Relationship{}
	}
	if a.Requirements == nil {
		a.Requirements = []Requirement{}
	}
	if a.Constraints == nil {
		a.Constraints = []Constraint{}
	}
	if a.Patterns == nil {
		a.Patterns = []PatternMatch{}
	}
	if a.BestPractices == nil {
		a.BestPractices = []Practice{}
	}
}

// HasService reports whether the architecture references any of the given
// service names, either as a service ref or as an AWS-flagged component.
// Matching is case-insensitive on substrings, the same way the text
// inference matches service names.
func (a *Architecture) HasService(names ...string) bool {
	for _, n := range names {
		n = strings.ToLower(n)
		for _, s := range a.Services {
			if strings.Contains(strings.ToLower(s.Name), n) {
				return true
			}
		}
		for _, c := range a.Components {
			if strings.Contains(strings.ToLower(c.Name), n) {
				return true
			}
		}
	}
	return false
}

// HasPattern reports whether any recognized pattern name contains the given
// lowercase fragment.
func (a *Architecture) HasPattern(fragment string) bool {
	for _, p := range a.Patterns {
		if strings.Contains(strings.ToLower(p.Name), fragment) {
			return true
		}
	}
	return false
}

// HasPractice reports whether a best-practice entry with the given category
// is present.
func (a *Architecture) HasPractice(category string) bool {
	for _, p := range a.BestPractices {
		if p.IsBestPractice && strings.EqualFold(p.Category, category) {
			return true
		}
	}
	return false
}

// AWSComponentNames returns the names of all AWS-flagged components, or
// ["Architecture"] when there are none. Validator recommendations are
// indexed under these names.
func (a *Architecture) AWSComponentNames() []string {
	var names []string
	for _, c := range a.Components {
		if c.IsAWSService {
			names = append(names, c.Name)
		}
	}
	if len(names) == 0 {
		return []string{"Architecture"}
	}
	return names
}

// ClampConfidence bounds a confidence value to [0, 1].
func ClampConfidence(v float64) float64 {
	return math.Min(1.0, math.Max(0.0, v))
}

// Round2 rounds to two decimal places, the precision every confidence value
// is reported at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

/// Slug derives a stable component ID from a display name: lowercased, with
// runs of non-alphanumeric characters collapsed to single dashes. IDs must
// be deterministic so repeated analysis of the same text yields identical
// output.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
