package wellarch

import "github.com/bgdnvk/archlens/internal/model"

func performancePillar() pillarDef {
	return pillarDef{
		Name:        "Performance Efficiency",
		Description: "Use computing resources efficiently and maintain efficiency as demand changes",
		Questions: []Question{
			{
				ID:     "perf-cache",
				Title:  "How do you reduce repeated work?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "perf-caching",
						Title:       "Cache hot data",
						Description: "No caching layer is part of the architecture",
						Severity:    model.SeverityMedium,
						Guidance:    "Add ElastiCache in front of databases and CloudFront in front of static or cacheable responses",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/performance-efficiency-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("cache", "CloudFront")
						},
					},
				},
			},
			{
				ID:     "perf-compute",
				Title:  "How do you select and scale compute?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "perf-elastic-compute",
						Title:       "Scale compute with demand",
						Description: "Compute capacity is fixed rather than scaling with load",
						Severity:    model.SeverityMedium,
						Guidance:    "Attach Auto Scaling to instance-based compute, or use Lambda or Fargate where capacity follows requests",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/performance-efficiency-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("Auto Scaling", "Lambda", "Fargate")
						},
					},
				},
			},
			{
				ID:     "perf-data",
				Title:  "How do you select your data store?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "perf-database-fit",
						Title:       "Match database to access pattern",
						Description: "A relational database is used without read scaling or a purpose-built alternative",
						Severity:    model.SeverityMedium,
						Guidance:    "For key-value access use DynamoDB; for relational loads consider Aurora with read replicas",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/performance-efficiency-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							if a.HasService("DynamoDB", "Aurora", "ElastiCache") {
								return true
							}
							return !a.HasService("RDS")
						},
					},
				},
			},
			{
				ID:     "perf-delivery",
				Title:  "How do you deliver content to users?",
				Weight: 1,
				Rules: []Rule{
					{
						ID:          "perf-edge-delivery",
						Title:       "Serve content from the edge",
						Description: "Content is served from origin without a CDN",
						Severity:    model.SeverityLow,
						Guidance:    "Put CloudFront in front of user-facing endpoints to cut latency for distant users",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/performance-efficiency-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("CloudFront")
						},
					},
				},
			},
		},
	}
}
