package wellarch

import (
	"math"
	"testing"

	"github.com/bgdnvk/archlens/internal/model"
)

func archWithComponents(names ...string) *model.Architecture {
	arch := &model.Architecture{Name: "Test"}
	for _, n := range names {
		arch.Components = append(arch.Components, model.Component{
			ID:           model.Slug(n),
			Name:         n,
			IsAWSService: true,
		})
	}
	return arch
}

func TestValidate_OverallScoreIsMeanOfPillars(t *testing.T) {
	v := NewValidator()

	archs := []*model.Architecture{
		nil,
		{},
		archWithComponents("EC2"),
		archWithComponents("CloudWatch", "IAM", "Auto Scaling", "SNS"),
		archWithComponents("Lambda", "S3", "DynamoDB", "IAM", "CloudWatch", "CloudFront"),
	}

	for _, arch := range archs {
		report := v.Validate(arch)

		if len(report.Pillars) != 6 {
			t.Fatalf("pillars = %d, want 6", len(report.Pillars))
		}

		var sum float64
		for _, p := range report.Pillars {
			if p.Score < 0 || p.Score > 100 {
				t.Errorf("pillar %s score %v outside [0, 100]", p.Name, p.Score)
			}
			if p.Score != math.Round(p.Score) {
				t.Errorf("pillar %s score %v is not an integer value", p.Name, p.Score)
			}
			sum += p.Score
		}
		want := math.Round(sum / 6)
		if report.OverallScore != want {
			t.Errorf("overall score = %v, want round(mean(pillars)) = %v", report.OverallScore, want)
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	v := NewValidator()
	arch := archWithComponents("EC2", "RDS", "CloudWatch")

	first := v.Validate(arch)
	second := v.Validate(arch)

	if first.OverallScore != second.OverallScore {
		t.Errorf("overall score changed across runs: %v then %v", first.OverallScore, second.OverallScore)
	}
	for i := range first.Pillars {
		if first.Pillars[i].Score != second.Pillars[i].Score {
			t.Errorf("pillar %s score changed across runs: %v then %v",
				first.Pillars[i].Name, first.Pillars[i].Score, second.Pillars[i].Score)
		}
	}

	// The input must not be mutated by validation.
	if len(arch.Components) != 3 {
		t.Errorf("validation mutated the input architecture")
	}
	if arch.Requirements != nil {
		t.Errorf("validation filled in fields on the input architecture")
	}
}

func TestValidate_MissingIAMIsCritical(t *testing.T) {
	v := NewValidator()
	arch := archWithComponents("EC2")

	report := v.Validate(arch)

	var security *PillarResult
	for i := range report.Pillars {
		if report.Pillars[i].Name == "Security" {
			security = &report.Pillars[i]
		}
	}
	if security == nil {
		t.Fatal("no Security pillar in report")
	}

	found := false
	for _, rec := range security.Recommendations {
		if rec.ID == "sec-iam" {
			found = true
			if rec.Severity != model.SeverityCritical {
				t.Errorf("sec-iam severity = %s, want critical", rec.Severity)
			}
			if rec.Pillar != "Security" {
				t.Errorf("sec-iam pillar = %q, want Security", rec.Pillar)
			}
			if len(rec.AffectedComponents) != 1 || rec.AffectedComponents[0] != "EC2" {
				t.Errorf("sec-iam affected components = %v, want [EC2]", rec.AffectedComponents)
			}
		}
	}
	if !found {
		t.Fatal("architecture without IAM did not fail the sec-iam rule")
	}

	if len(report.CriticalIssues) == 0 {
		t.Error("critical bucket is empty despite a failed critical rule")
	}
}

func TestValidate_WellManagedScoresHigher(t *testing.T) {
	v := NewValidator()

	bare := v.Validate(archWithComponents("EC2"))
	managed := v.Validate(archWithComponents("CloudWatch", "IAM", "Auto Scaling", "SNS"))

	if managed.OverallScore <= bare.OverallScore {
		t.Errorf("managed architecture scored %v, bare EC2 scored %v; want strictly higher",
			managed.OverallScore, bare.OverallScore)
	}
}

func TestValidate_FailingMoreRulesNeverRaisesScore(t *testing.T) {
	v := NewValidator()

	full := archWithComponents("CloudWatch", "IAM", "Auto Scaling", "SNS")
	withoutIAM := archWithComponents("CloudWatch", "Auto Scaling", "SNS")

	fullScore := v.Validate(full).OverallScore
	reducedScore := v.Validate(withoutIAM).OverallScore

	if reducedScore > fullScore {
		t.Errorf("removing IAM raised the overall score from %v to %v", fullScore, reducedScore)
	}
}

func TestValidate_NilAndPartialInput(t *testing.T) {
	v := NewValidator()

	// None of these may panic, and all must produce a full report.
	inputs := []*model.Architecture{
		nil,
		{},
		{Components: []model.Component{{Name: "EC2"}}},
		{Services: []model.ServiceRef{{Name: "Lambda"}}},
		{Patterns: []model.PatternMatch{{Name: "serverless api"}}},
	}

	for _, arch := range inputs {
		report := v.Validate(arch)
		if report == nil {
			t.Fatal("Validate returned nil report")
		}
		if len(report.Pillars) != 6 {
			t.Errorf("pillars = %d, want 6", len(report.Pillars))
		}
		if report.RecommendationsByComponent == nil {
			t.Error("recommendations-by-component map is nil")
		}
	}
}

func TestValidate_RecommendationsIndexedUnderArchitectureWhenNoAWSComponents(t *testing.T) {
	v := NewValidator()

	report := v.Validate(&model.Architecture{})

	if len(report.RecommendationsByComponent) != 1 {
		t.Fatalf("component index has %d keys, want 1", len(report.RecommendationsByComponent))
	}
	recs, ok := report.RecommendationsByComponent["Architecture"]
	if !ok {
		t.Fatal("findings for an empty architecture must be indexed under \"Architecture\"")
	}
	if len(recs) == 0 {
		t.Error("empty architecture produced no findings")
	}
}

func TestValidate_SeverityBucketsPartitionFindings(t *testing.T) {
	v := NewValidator()
	report := v.Validate(archWithComponents("EC2"))

	bucketTotal := len(report.CriticalIssues) + len(report.HighRiskIssues) +
		len(report.MediumRiskIssues) + len(report.LowRiskIssues)

	pillarTotal := 0
	for _, p := range report.Pillars {
		pillarTotal += len(p.Recommendations)
	}

	if bucketTotal != pillarTotal {
		t.Errorf("severity buckets hold %d findings, pillars hold %d; every finding belongs to exactly one bucket",
			bucketTotal, pillarTotal)
	}
}
