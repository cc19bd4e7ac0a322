package wellarch

import "github.com/bgdnvk/archlens/internal/model"

func sustainabilityPillar() pillarDef {
	return pillarDef{
		Name:        "Sustainability",
		Description: "Minimize the environmental impact of running cloud workloads",
		Questions: []Question{
			{
				ID:     "sus-utilization",
				Title:  "How do you keep utilization high?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "sus-right-sizing",
						Title:       "Scale capacity to actual use",
						Description: "Capacity is provisioned statically, leaving hardware idle",
						Severity:    model.SeverityMedium,
						Guidance:    "Idle capacity wastes energy as well as money; use Auto Scaling or request-driven compute",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/sustainability-pillar/sustainability-pillar.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("Auto Scaling", "Lambda", "Fargate")
						},
					},
				},
			},
			{
				ID:     "sus-managed",
				Title:  "How do you use managed services to share infrastructure?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "sus-managed-services",
						Title:       "Share infrastructure through managed services",
						Description: "Dedicated instances are used where multi-tenant managed services would do",
						Severity:    model.SeverityLow,
						Guidance:    "Managed and serverless services run at higher utilization than dedicated instances",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/sustainability-pillar/sustainability-pillar.html"},
						Check: func(a *model.Architecture) bool {
							if a.HasService("Lambda", "Fargate", "Aurora", "DynamoDB", "S3") {
								return true
							}
							return !a.HasService("EC2")
						},
					},
				},
			},
			{
				ID:     "sus-design",
				Title:  "How does your design reduce resource consumption?",
				Weight: 1,
				Rules: []Rule{
					{
						ID:          "sus-event-driven",
						Title:       "Prefer event-driven over always-on",
						Description: "The workload runs continuously rather than in response to events",
						Severity:    model.SeverityLow,
						Guidance:    "Event-driven designs consume resources only while work exists; consider Lambda triggers over polling loops",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/sustainability-pillar/sustainability-pillar.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("Lambda") || a.HasPattern("serverless") || a.HasPattern("event-driven")
						},
					},
				},
			},
		},
	}
}
