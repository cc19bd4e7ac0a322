package nlp

import (
	"fmt"
	"strings"

	"github.com/bgdnvk/archlens/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fallbackName        = "AWS Architecture Solution"
	fallbackDescription = "AWS architecture based on provided requirements"
)

// nameStopwords are generic words skipped when deriving a name from text.
var nameStopwords = map[string]bool{
	"architecture": true,
	"solution":     true,
	"system":       true,
	"platform":     true,
	"application":  true,
}

var relationshipDescriptions = map[string]string{
	"uses":          "one component uses another",
	"stores-in":     "data is stored in a persistence layer",
	"reads-from":    "data is read from a source",
	"sends-to":      "data or messages are sent to a target",
	"receives-from": "data or messages are received from a source",
	"depends-on":    "one component depends on another",
}

var titleCaser = cases.Title(language.English)

// Analyzer assembles extracted entities and recognized intents into one
// architecture record.
type Analyzer struct{}

// NewAnalyzer returns an analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Assemble builds the architecture record for one text. The record is
// complete except for its validation block, which the consistency checks
// attach afterwards.
func (a *Analyzer) Assemble(text string, entities model.Entities, intents model.Intents) *model.Architecture {
	arch := &model.Architecture{
		Name:          deriveName(text),
		Description:   deriveDescription(text),
		Type:          deriveType(intents.Patterns, entities.Services),
		Components:    buildComponents(entities),
		Services:      buildServices(entities.Services),
		Relationships: buildRelationships(entities.Relationships),
		Requirements:  buildRequirements(entities.Requirements),
		Constraints:   buildConstraints(intents.Constraints),
		Patterns:      buildPatterns(intents.Patterns),
		BestPractices: buildPractices(intents.Practices),
		Confidence:    aggregateConfidence(entities.Services, intents.Patterns),
	}
	return arch
}

// deriveName picks the first word longer than three characters that is not a
// generic filler word, title-cases it, and appends " Architecture".
func deriveName(text string) string {
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,!?;:\"'()")
		if len(word) <= 3 {
			continue
		}
		if nameStopwords[strings.ToLower(word)] {
			continue
		}
		return titleCaser.String(strings.ToLower(word)) + " Architecture"
	}
	return fallbackName
}

// deriveDescription takes the first sentence longer than ten characters.
func deriveDescription(text string) string {
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) > 10 {
			return sentence
		}
	}
	return fallbackDescription
}

// deriveType walks a fixed priority list: recognized pattern names first,
// then service-implied styles. Later entries only apply when every earlier
// one failed, so the ordering is load-bearing.
func deriveType(patterns []model.PatternMatch, services []model.ServiceMention) string {
	for _, p := range patterns {
		if strings.Contains(strings.ToLower(p.Name), "serverless") {
			return "Serverless Architecture"
		}
	}
	for _, p := range patterns {
		if strings.Contains(strings.ToLower(p.Name), "microservices") {
			return "Microservices Architecture"
		}
	}
	for _, p := range patterns {
		if strings.Contains(strings.ToLower(p.Name), "event-driven") {
			return "Event-Driven Architecture"
		}
	}
	for _, s := range services {
		if s.Name == "Lambda" {
			return "Serverless Architecture"
		}
	}
	for _, s := range services {
		if s.Name == "ECS" || s.Name == "EKS" {
			return "Containerized Architecture"
		}
	}
	return "General AWS Architecture"
}

// buildComponents turns service mentions into AWS-flagged components and
// generic component mentions into plain ones. IDs are slugs of the display
// name, with a numeric suffix on collision, so identical input always
// produces identical IDs.
func buildComponents(entities model.Entities) []model.Component {
	components := []model.Component{}
	used := make(map[string]int)

	assignID := func(name string) string {
		id := model.Slug(name)
		if id == "" {
			id = "component"
		}
		used[id]++
		if used[id] > 1 {
			id = fmt.Sprintf("%s-%d", id, used[id])
		}
		return id
	}

	for _, s := range entities.Services {
		components = append(components, model.Component{
			ID:           assignID(s.Name),
			Name:         s.Name,
			Type:         s.Category,
			Description:  s.Description,
			IsAWSService: true,
		})
	}

	for _, c := range entities.Components {
		components = append(components, model.Component{
			ID:           assignID(c.Name),
			Name:         c.Name,
			Type:         c.Type,
			Description:  fmt.Sprintf("Detected %s component", c.Type),
			IsAWSService: false,
		})
	}

	return components
}

func buildServices(mentions []model.ServiceMention) []model.ServiceRef {
	refs := []model.ServiceRef{}
	for _, m := range mentions {
		refs = append(refs, model.ServiceRef{
			Name:       m.Name,
			Category:   m.Category,
			Purpose:    m.Description,
			Confidence: m.Confidence,
		})
	}
	return refs
}

func buildRelationships(mentions []model.RelationshipMention) []model.Relationship {
	rels := []model.Relationship{}
	for _, m := range mentions {
		rels = append(rels, model.Relationship{
			Type:        m.Type,
			Description: relationshipDescriptions[m.Type],
			Confidence:  m.Confidence,
		})
	}
	return rels
}

func buildRequirements(mentions []model.RequirementMention) []model.Requirement {
	reqs := []model.Requirement{}
	for _, m := range mentions {
		reqs = append(reqs, model.Requirement{Type: m.Type, Value: m.Value})
	}
	return reqs
}

func buildConstraints(matches []model.ConstraintMatch) []model.Constraint {
	cons := []model.Constraint{}
	for _, m := range matches {
		cons = append(cons, model.Constraint{Type: m.Type, Description: m.Description})
	}
	return cons
}

func buildPatterns(matches []model.PatternMatch) []model.PatternMatch {
	out := make([]model.PatternMatch, len(matches))
	copy(out, matches)
	return out
}

func buildPractices(signals []model.PracticeSignal) []model.Practice {
	practices := []model.Practice{}
	for _, s := range signals {
		practices = append(practices, model.Practice{
			Name:           s.Name,
			Category:       s.Category,
			IsBestPractice: s.IsBestPractice,
		})
	}
	return practices
}

// aggregateConfidence blends mean service confidence (weight 0.6) with mean
// pattern confidence (weight 0.4). An empty list contributes zero with a
// denominator of one rather than dividing by zero.
func aggregateConfidence(services []model.ServiceMention, patterns []model.PatternMatch) float64 {
	var serviceSum float64
	for _, s := range services {
		serviceSum += s.Confidence
	}
	serviceDen := float64(len(services))
	if serviceDen == 0 {
		serviceDen = 1
	}

	var patternSum float64
	for _, p := range patterns {
		patternSum += p.Confidence
	}
	patternDen := float64(len(patterns))
	if patternDen == 0 {
		patternDen = 1
	}

	return model.ClampConfidence(0.6*(serviceSum/serviceDen) + 0.4*(patternSum/patternDen))
}
