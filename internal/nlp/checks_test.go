package nlp

import (
	"strings"
	"testing"

	"github.com/bgdnvk/archlens/internal/model"
)

func archWithServices(names ...string) *model.Architecture {
	arch := &model.Architecture{
		Name:        "Test Architecture",
		Description: "architecture under test",
		Components:  []model.Component{},
		Services:    []model.ServiceRef{},
		Confidence:  0.9,
	}
	for _, n := range names {
		arch.Components = append(arch.Components, model.Component{
			ID: model.Slug(n), Name: n, IsAWSService: true,
		})
		arch.Services = append(arch.Services, model.ServiceRef{Name: n})
	}
	arch.Requirements = []model.Requirement{{Type: "monitoring", Value: "monitored"}}
	return arch
}

func TestCheck_Completeness(t *testing.T) {
	c := NewChecker()

	arch := &model.Architecture{Name: "Empty", Description: "nothing detected", Confidence: 0.4}
	c.Check(arch)

	if len(arch.Validation.Errors) != 2 {
		t.Fatalf("errors = %d, want 2 (no components, no services)", len(arch.Validation.Errors))
	}
	for _, e := range arch.Validation.Errors {
		if e.Severity != model.SeverityHigh {
			t.Errorf("completeness error severity = %s, want high", e.Severity)
		}
	}

	foundComponentError := false
	for _, e := range arch.Validation.Errors {
		if strings.Contains(e.Message, "No components detected") {
			foundComponentError = true
		}
	}
	if !foundComponentError {
		t.Error("missing 'No components detected' error")
	}

	foundReqWarning := false
	for _, w := range arch.Validation.Warnings {
		if w.Type == "completeness" {
			foundReqWarning = true
			if w.Severity != model.SeverityMedium {
				t.Errorf("requirements warning severity = %s, want medium", w.Severity)
			}
		}
	}
	if !foundReqWarning {
		t.Error("missing warning for absent requirements and constraints")
	}
}

func TestCheck_ConfidenceFormula(t *testing.T) {
	c := NewChecker()

	// 2 errors and 1 warning: 0.9 - 2*0.15 - 1*0.05 = 0.55
	arch := &model.Architecture{Name: "Empty", Description: "nothing detected", Confidence: 0.9}
	c.Check(arch)

	if arch.Confidence != 0.55 {
		t.Errorf("adjusted confidence = %v, want 0.55", arch.Confidence)
	}
	if arch.Validation.Confidence != arch.Confidence {
		t.Errorf("validation confidence %v != architecture confidence %v",
			arch.Validation.Confidence, arch.Confidence)
	}
}

func TestCheck_ConfidenceFloor(t *testing.T) {
	c := NewChecker()

	// Low starting confidence with two errors must clamp at 0.1, never below.
	arch := &model.Architecture{Name: "Empty", Description: "nothing detected", Confidence: 0.2}
	c.Check(arch)

	if arch.Confidence != 0.1 {
		t.Errorf("adjusted confidence = %v, want floor 0.1", arch.Confidence)
	}
}

func TestCheck_VagueTerms(t *testing.T) {
	c := NewChecker()

	arch := archWithServices("S3")
	arch.Description = "a fast and reliable setup with some caching"
	c.Check(arch)

	wantTerms := []string{"fast", "reliable", "some"}
	for _, term := range wantTerms {
		found := false
		for _, w := range arch.Validation.Warnings {
			if w.Type == "ambiguity" && strings.Contains(w.Message, `"`+term+`"`) {
				found = true
				if w.Severity != model.SeverityLow {
					t.Errorf("vague term warning severity = %s, want low", w.Severity)
				}
			}
		}
		if !found {
			t.Errorf("no ambiguity warning for vague term %q", term)
		}
	}

	// One warning per distinct term, not per occurrence.
	count := 0
	for _, w := range arch.Validation.Warnings {
		if w.Type == "ambiguity" {
			count++
		}
	}
	if count != len(wantTerms) {
		t.Errorf("ambiguity warnings = %d, want %d", count, len(wantTerms))
	}
}

func TestCheck_ConflictingRequirements(t *testing.T) {
	c := NewChecker()

	arch := archWithServices("Lambda")
	arch.Requirements = []model.Requirement{
		{Type: "cost", Value: "cost-effective"},
		{Type: "performance", Value: "low-latency"},
	}
	c.Check(arch)

	found := false
	for _, w := range arch.Validation.Warnings {
		if w.Type == "conflicting-requirements" {
			found = true
			if w.Severity != model.SeverityMedium {
				t.Errorf("conflict warning severity = %s, want medium", w.Severity)
			}
		}
	}
	if !found {
		t.Error("cost-effective + low-latency did not produce a conflict warning")
	}
}

func TestCheck_SecurityUsabilityTradeoff(t *testing.T) {
	c := NewChecker()

	arch := archWithServices("Cognito")
	arch.Requirements = []model.Requirement{{Type: "security", Value: "secure"}}
	arch.Constraints = []model.Constraint{
		{Type: "usability", Description: "prioritize user experience and ease of use"},
	}
	c.Check(arch)

	found := false
	for _, w := range arch.Validation.Warnings {
		if w.Type == "tradeoff" {
			found = true
		}
	}
	if !found {
		t.Error("security requirement + usability constraint did not produce a tradeoff warning")
	}
}

func TestCheck_ServiceCompatibility(t *testing.T) {
	c := NewChecker()

	tests := []struct {
		name     string
		services []string
		wantPair string
	}{
		{"ec2 and lambda", []string{"EC2", "Lambda", "IAM"}, "EC2 and Lambda"},
		{"rds and dynamodb", []string{"RDS", "DynamoDB", "IAM"}, "RDS and DynamoDB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arch := archWithServices(tt.services...)
			c.Check(arch)

			found := false
			for _, w := range arch.Validation.Warnings {
				if w.Type == "compatibility" && strings.Contains(w.Message, tt.wantPair) {
					found = true
					if w.Severity != model.SeverityMedium {
						t.Errorf("compatibility warning severity = %s, want medium", w.Severity)
					}
				}
			}
			if !found {
				t.Errorf("services %v did not produce compatibility warning for %s", tt.services, tt.wantPair)
			}
		})
	}
}

func TestCheck_Coverage(t *testing.T) {
	c := NewChecker()

	t.Run("missing security coverage", func(t *testing.T) {
		arch := archWithServices("S3")
		c.Check(arch)

		found := false
		for _, s := range arch.Validation.Suggestions {
			if strings.Contains(s.Message, "security") {
				found = true
			}
		}
		if !found {
			t.Error("architecture without security services got no security suggestion")
		}
	})

	t.Run("security service satisfies coverage", func(t *testing.T) {
		arch := archWithServices("S3", "IAM")
		c.Check(arch)

		for _, s := range arch.Validation.Suggestions {
			if strings.Contains(s.Message, "No security services") {
				t.Error("IAM present but security suggestion still raised")
			}
		}
	})

	t.Run("security practice satisfies coverage", func(t *testing.T) {
		arch := archWithServices("S3")
		arch.BestPractices = []model.Practice{
			{Name: "encryption-at-rest", Category: "security", IsBestPractice: true},
		}
		c.Check(arch)

		for _, s := range arch.Validation.Suggestions {
			if strings.Contains(s.Message, "No security services") {
				t.Error("security practice present but security suggestion still raised")
			}
		}
	})

	t.Run("availability coverage for stateful services", func(t *testing.T) {
		arch := archWithServices("RDS", "IAM")
		c.Check(arch)

		found := false
		for _, s := range arch.Validation.Suggestions {
			if strings.Contains(s.Message, "availability practice") {
				found = true
				if s.Severity != model.SeverityMedium {
					t.Errorf("availability suggestion severity = %s, want medium", s.Severity)
				}
			}
		}
		if !found {
			t.Error("RDS without availability practice got no availability suggestion")
		}
	})
}
