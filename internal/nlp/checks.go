package nlp

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/bgdnvk/archlens/internal/model"
)

// vagueTerms flag wording that gives the inference nothing concrete to work
// with. One warning is raised per distinct term found anywhere in the
// serialized architecture.
var vagueTerms = []string{
	"some", "few", "several", "many", "various",
	"good", "better", "best", "fast", "quick",
	"reliable", "stable", "efficient", "optimized",
}

var vagueTermRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(vagueTerms))
	for _, term := range vagueTerms {
		res[term] = regexp.MustCompile(`\b` + term + `\b`)
	}
	return res
}()

// securityServices are the catalog services whose presence counts as
// security coverage.
var securityServices = []string{"IAM", "KMS", "WAF", "GuardDuty"}

// availabilitySensitive are services that warrant an availability practice
// when present.
var availabilitySensitive = []string{"RDS", "EC2", "EKS"}

// Checker runs the consistency checks over an assembled architecture:
// completeness, ambiguity, service compatibility, and best-practice
// coverage. It attaches the resulting validation block and recomputes the
// architecture confidence from the finding counts.
type Checker struct{}

// NewChecker returns a checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check appends findings for all four check families and overwrites the
// architecture confidence. The adjusted confidence never drops below 0.1.
func (c *Checker) Check(arch *model.Architecture) {
	v := &model.Validation{
		Errors:      []model.Issue{},
		Warnings:    []model.Issue{},
		Suggestions: []model.Issue{},
	}

	checkCompleteness(arch, v)
	checkAmbiguity(arch, v)
	checkCompatibility(arch, v)
	checkCoverage(arch, v)

	adjusted := arch.Confidence - 0.15*float64(len(v.Errors)) - 0.05*float64(len(v.Warnings))
	adjusted = model.Round2(adjusted)
	if adjusted < 0.1 {
		adjusted = 0.1
	}

	v.Confidence = adjusted
	arch.Confidence = adjusted
	arch.Validation = v
}

func checkCompleteness(arch *model.Architecture, v *model.Validation) {
	if len(arch.Components) == 0 {
		v.Errors = append(v.Errors, model.Issue{
			Type:       "completeness",
			Message:    "No components detected in the architecture",
			Severity:   model.SeverityHigh,
			Suggestion: "Describe the parts of the system, e.g. frontend, api, database",
		})
	}
	if len(arch.Services) == 0 {
		v.Errors = append(v.Errors, model.Issue{
			Type:       "completeness",
			Message:    "No AWS services identified in the architecture",
			Severity:   model.SeverityHigh,
			Suggestion: "Mention specific AWS services or workload types so services can be inferred",
		})
	}
	if len(arch.Requirements) == 0 && len(arch.Constraints) == 0 {
		v.Warnings = append(v.Warnings, model.Issue{
			Type:       "completeness",
			Message:    "No requirements or constraints were identified",
			Severity:   model.SeverityMedium,
			Suggestion: "State non-functional needs such as availability, performance, or budget",
		})
	}
}

func checkAmbiguity(arch *model.Architecture, v *model.Validation) {
	serialized, err := json.Marshal(arch)
	if err != nil {
		// Architecture is plain data; marshaling cannot realistically fail.
		serialized = []byte{}
	}
	lower := strings.ToLower(string(serialized))

	for _, term := range vagueTerms {
		if vagueTermRes[term].MatchString(lower) {
			v.Warnings = append(v.Warnings, model.Issue{
				Type:       "ambiguity",
				Message:    fmt.Sprintf("Vague term %q found in the requirements", term),
				Severity:   model.SeverityLow,
				Suggestion: fmt.Sprintf("Replace %q with a measurable target", term),
			})
		}
	}

	if hasRequirement(arch, "cost", "cost-effective") && hasRequirement(arch, "performance", "low-latency") {
		v.Warnings = append(v.Warnings, model.Issue{
			Type:       "conflicting-requirements",
			Message:    "Cost-effectiveness and low latency pull in opposite directions",
			Severity:   model.SeverityMedium,
			Suggestion: "Decide which of cost or latency is the primary target and set a bound on the other",
		})
	}

	if hasRequirementType(arch, "security") && hasUsabilityConstraint(arch) {
		v.Warnings = append(v.Warnings, model.Issue{
			Type:       "tradeoff",
			Message:    "Security requirements may conflict with the ease-of-use constraint",
			Severity:   model.SeverityMedium,
			Suggestion: "Review authentication flows for friction; consider SSO or federated identity",
		})
	}
}

func checkCompatibility(arch *model.Architecture, v *model.Validation) {
	if hasServiceRef(arch, "EC2") && hasServiceRef(arch, "Lambda") {
		v.Warnings = append(v.Warnings, model.Issue{
			Type:       "compatibility",
			Message:    "Both EC2 and Lambda are present; mixing server and serverless compute adds operational overhead",
			Severity:   model.SeverityMedium,
			Suggestion: "Consolidate on one compute model unless the workloads genuinely differ",
		})
	}
	if hasServiceRef(arch, "RDS") && hasServiceRef(arch, "DynamoDB") {
		v.Warnings = append(v.Warnings, model.Issue{
			Type:       "compatibility",
			Message:    "Both RDS and DynamoDB are present; two database models double the persistence surface",
			Severity:   model.SeverityMedium,
			Suggestion: "Confirm both relational and NoSQL access patterns exist before running two databases",
		})
	}
}

func checkCoverage(arch *model.Architecture, v *model.Validation) {
	hasSecurityService := false
	for _, name := range securityServices {
		if hasServiceRef(arch, name) {
			hasSecurityService = true
			break
		}
	}
	if !hasSecurityService && !arch.HasPractice("security") {
		v.Suggestions = append(v.Suggestions, model.Issue{
			Type:       "coverage",
			Message:    "No security services or security practices were identified",
			Severity:   model.SeverityMedium,
			Suggestion: "Add IAM policies and consider KMS encryption, WAF, or GuardDuty",
		})
	}

	needsAvailability := false
	for _, name := range availabilitySensitive {
		if hasServiceRef(arch, name) {
			needsAvailability = true
			break
		}
	}
	if needsAvailability && !arch.HasPractice("availability") {
		v.Suggestions = append(v.Suggestions, model.Issue{
			Type:       "coverage",
			Message:    "Stateful or instance-based services are present without an availability practice",
			Severity:   model.SeverityMedium,
			Suggestion: "Deploy across multiple availability zones and add automated failover",
		})
	}
}

func hasServiceRef(arch *model.Architecture, name string) bool {
	for _, s := range arch.Services {
		if s.Name == name {
			return true
		}
	}
	return false
}

func hasRequirement(arch *model.Architecture, reqType, value string) bool {
	for _, r := range arch.Requirements {
		if r.Type == reqType && r.Value == value {
			return true
		}
	}
	return false
}

func hasRequirementType(arch *model.Architecture, reqType string) bool {
	for _, r := range arch.Requirements {
		if r.Type == reqType {
			return true
		}
	}
	return false
}

func hasUsabilityConstraint(arch *model.Architecture) bool {
	for _, c := range arch.Constraints {
		desc := strings.ToLower(c.Description)
		if strings.Contains(desc, "user experience") || strings.Contains(desc, "ease of use") {
			return true
		}
	}
	return false
}
