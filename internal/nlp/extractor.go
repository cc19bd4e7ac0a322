// Package nlp implements the deterministic text inference pipeline: entity
// extraction, intent recognition, architecture assembly, and consistency
// checks. There is no model or tokenizer anywhere in here; every match is
// plain substring or regex matching against fixed vocabularies, which keeps
// results reproducible run to run.
package nlp

import (
	"regexp"
	"strings"

	"github.com/bgdnvk/archlens/internal/catalog"
	"github.com/bgdnvk/archlens/internal/model"
)

// Confidence levels assigned by the extractor. Exact service name hits rank
// above keyword hits; the default branch is kept for safety even though the
// current match rule cannot reach it.
const (
	confServiceName    = 0.95
	confServiceKeyword = 0.8
	confServiceDefault = 0.6
	confComponent      = 0.8
	confRelationship   = 0.7
	confRequirement    = 0.8
)

// componentPattern matches one generic component category.
type componentPattern struct {
	category string
	re       *regexp.Regexp
}

// relationshipPattern matches one relationship verb family.
type relationshipPattern struct {
	relType string
	re      *regexp.Regexp
}

// requirementPattern matches one non-functional requirement family and
// carries the canonical value recorded for it.
type requirementPattern struct {
	reqType string
	value   string
	re      *regexp.Regexp
}

var componentPatterns = []componentPattern{
	{"user-interface", regexp.MustCompile(`\b(?:(?:web|mobile|admin) )?(?:ui|user interface|frontend|front-end|front end|website|portal|dashboard)\b`)},
	{"data-storage", regexp.MustCompile(`\b(?:database|data store|datastore|data storage|repository)\b`)},
	{"service", regexp.MustCompile(`\b(?:api|backend|back-end|microservice|web service|rest service)\b`)},
	{"messaging", regexp.MustCompile(`\b(?:message queue|queue|message broker|event bus|messaging)\b`)},
	{"cache", regexp.MustCompile(`\b(?:cache|caching|in-memory store)\b`)},
	{"authentication", regexp.MustCompile(`\b(?:auth(?:entication|orization)?|login|sign.?in|sign.?up|sso|single sign.?on)\b`)},
}

var relationshipPatterns = []relationshipPattern{
	{"uses", regexp.MustCompile(`\buses?\b|\busing\b|\butilizes?\b`)},
	{"stores-in", regexp.MustCompile(`\bstores?\b.*\bin\b|\bsaves?\b.*\b(?:to|in)\b|\bpersists?\b`)},
	{"reads-from", regexp.MustCompile(`\breads?\b.*\bfrom\b|\bfetch(?:es)?\b.*\bfrom\b|\bretrieves?\b.*\bfrom\b`)},
	{"sends-to", regexp.MustCompile(`\bsends?\b.*\bto\b|\bpublish(?:es)?\b.*\bto\b|\bwrites?\b.*\bto\b|\bpushes?\b.*\bto\b`)},
	{"receives-from", regexp.MustCompile(`\breceives?\b.*\bfrom\b|\bconsumes?\b.*\bfrom\b|\bsubscribes?\b.*\bto\b`)},
	{"depends-on", regexp.MustCompile(`\bdepends?\b.*\bon\b|\brequires?\b|\brelies\b.*\bon\b`)},
}

var requirementPatterns = []requirementPattern{
	{"availability", "high-availability", regexp.MustCompile(`high.?availab|always.?(?:on|available)|uptime|fault.?toleran|\b24.?7\b|multi.?az`)},
	{"performance", "low-latency", regexp.MustCompile(`low.?latency|high.?performance|fast response|\bthroughput\b|response time|performant`)},
	{"scalability", "scalable", regexp.MustCompile(`scal(?:e|able|ability|ing)|handle (?:high|heavy|large|millions)|grow(?:th|ing)? (?:in|of) (?:traffic|users|load)|elastic`)},
	{"security", "secure", regexp.MustCompile(`secur(?:e|ity)|encrypt(?:ed|ion)?|complian(?:t|ce)|\bgdpr\b|\bhipaa\b|\bpci\b|protect(?:ed|ion)?`)},
	{"cost", "cost-effective", regexp.MustCompile(`cost.?(?:effective|efficient|optimi)|low.?cost|budget|cheap|affordable|minimi[sz]e (?:cost|spend)`)},
	{"reliability", "reliable", regexp.MustCompile(`reliab(?:le|ility)|resilien(?:t|ce)|durab(?:le|ility)|no data loss|disaster recovery`)},
	{"monitoring", "monitored", regexp.MustCompile(`monitor(?:ing|ed)?|observab(?:le|ility)|alert(?:ing|s)?|audit(?:ing)?|logging|metrics`)},
}

// Extractor detects services, generic components, relationships, and
// requirements in free-form text by matching against the service catalog and
// fixed regex families.
type Extractor struct {
	catalog *catalog.Catalog
}

// NewExtractor returns an extractor bound to the given catalog.
func NewExtractor(c *catalog.Catalog) *Extractor {
	return &Extractor{catalog: c}
}

// Extract runs every detector over the text. Empty text yields a result with
// all-empty lists; extraction itself never fails.
func (e *Extractor) Extract(text string) model.Entities {
	lower := strings.ToLower(text)

	return model.Entities{
		Services:      e.extractServices(lower),
		Components:    extractComponents(lower),
		Relationships: extractRelationships(lower),
		Requirements:  extractRequirements(lower),
	}
}

// extractServices matches catalog entries against the lowercased text. An
// entry matches when its name equals the text verbatim or any keyword is a
// substring of the text. First match per service name wins.
func (e *Extractor) extractServices(lower string) []model.ServiceMention {
	mentions := []model.ServiceMention{}
	seen := make(map[string]bool)

	for _, entry := range e.catalog.Services() {
		if seen[entry.Name] {
			continue
		}

		nameLower := strings.ToLower(entry.Name)
		keywordHit := false
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				keywordHit = true
				break
			}
		}

		if nameLower != lower && !keywordHit {
			continue
		}

		confidence := confServiceDefault
		switch {
		case strings.Contains(lower, nameLower):
			confidence = confServiceName
		case keywordHit:
			confidence = confServiceKeyword
		}

		seen[entry.Name] = true
		mentions = append(mentions, model.ServiceMention{
			Name:        entry.Name,
			Category:    entry.Category,
			Description: entry.Description,
			Confidence:  confidence,
		})
	}

	return mentions
}

// extractComponents scans the six generic component families. Mentions are
// deduplicated by the literal matched substring, so "database" appearing
// twice yields one mention but "database" and "data store" yield two.
func extractComponents(lower string) []model.ComponentMention {
	mentions := []model.ComponentMention{}
	seen := make(map[string]bool)

	for _, cp := range componentPatterns {
		for _, match := range cp.re.FindAllString(lower, -1) {
			if seen[match] {
				continue
			}
			seen[match] = true
			mentions = append(mentions, model.ComponentMention{
				Name:       match,
				Type:       cp.category,
				Confidence: confComponent,
			})
		}
	}

	return mentions
}

// extractRelationships emits at most one mention per verb family.
func extractRelationships(lower string) []model.RelationshipMention {
	mentions := []model.RelationshipMention{}

	for _, rp := range relationshipPatterns {
		if rp.re.MatchString(lower) {
			mentions = append(mentions, model.RelationshipMention{
				Type:       rp.relType,
				Confidence: confRelationship,
			})
		}
	}

	return mentions
}

// extractRequirements emits at most one mention per requirement family.
func extractRequirements(lower string) []model.RequirementMention {
	mentions := []model.RequirementMention{}

	for _, rp := range requirementPatterns {
		if rp.re.MatchString(lower) {
			mentions = append(mentions, model.RequirementMention{
				Type:       rp.reqType,
				Value:      rp.value,
				Confidence: confRequirement,
			})
		}
	}

	return mentions
}
