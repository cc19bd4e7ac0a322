package wellarch

import "github.com/bgdnvk/archlens/internal/model"

func costOptimizationPillar() pillarDef {
	return pillarDef{
		Name:        "Cost Optimization",
		Description: "Avoid unnecessary costs and understand where money is being spent",
		Questions: []Question{
			{
				ID:     "cost-demand",
				Title:  "How do you match supply of resources to demand?",
				Weight: 3,
				Rules: []Rule{
					{
						ID:          "cost-scale-with-demand",
						Title:       "Pay for what demand needs",
						Description: "Capacity does not scale down with demand, so idle resources are billed",
						Severity:    model.SeverityMedium,
						Guidance:    "Use Auto Scaling on instance fleets or move to Lambda and Fargate where idle time costs nothing",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/cost-optimization-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("Auto Scaling", "Lambda", "Fargate")
						},
					},
				},
			},
			{
				ID:     "cost-services",
				Title:  "How do you evaluate cost when you select services?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "cost-managed-services",
						Title:       "Prefer managed services",
						Description: "Self-managed instances carry undifferentiated operations cost",
						Severity:    model.SeverityLow,
						Guidance:    "Managed services shift patching and capacity planning to AWS; compare EC2 against ECS, Fargate, or Lambda",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/cost-optimization-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							if a.HasService("Lambda", "Fargate", "Aurora", "DynamoDB", "ECS", "EKS") {
								return true
							}
							return !a.HasService("EC2")
						},
					},
				},
			},
			{
				ID:     "cost-storage",
				Title:  "How do you manage storage cost over time?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "cost-storage-tiering",
						Title:       "Tier aging data",
						Description: "Object storage is used without an archival tier for cold data",
						Severity:    model.SeverityLow,
						Guidance:    "Add S3 lifecycle rules moving cold objects to infrequent access or Glacier",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/cost-optimization-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							if a.HasService("Glacier") {
								return true
							}
							return !a.HasService("S3")
						},
					},
				},
			},
			{
				ID:     "cost-visibility",
				Title:  "How do you monitor usage and cost?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "cost-monitoring",
						Title:       "Track spend continuously",
						Description: "No cost monitoring or budget alerting is part of the architecture",
						Severity:    model.SeverityMedium,
						Guidance:    "Set AWS Budgets alerts and review Cost Explorer monthly, tagged by component",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/cost-optimization-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("Budgets", "Cost Explorer")
						},
					},
				},
			},
		},
	}
}
