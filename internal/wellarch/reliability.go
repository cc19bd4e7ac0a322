package wellarch

import "github.com/bgdnvk/archlens/internal/model"

func reliabilityPillar() pillarDef {
	return pillarDef{
		Name:        "Reliability",
		Description: "Ensure a workload performs its intended function correctly and consistently",
		Questions: []Question{
			{
				ID:     "rel-failure",
				Title:  "How does your workload withstand component failures?",
				Weight: 3,
				Rules: []Rule{
					{
						ID:          "rel-multi-az",
						Title:       "Deploy across failure domains",
						Description: "Nothing in the architecture spreads the workload across availability zones",
						Severity:    model.SeverityHigh,
						Guidance:    "Run instances behind a load balancer in an Auto Scaling group spanning at least two availability zones",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/reliability-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasPractice("availability") || a.HasService("Auto Scaling", "ELB")
						},
					},
					{
						ID:          "rel-single-instance",
						Title:       "Avoid single-instance compute",
						Description: "EC2 is present without any scaling or load-balancing layer",
						Severity:    model.SeverityHigh,
						Guidance:    "A lone instance is a single point of failure; add Auto Scaling or move the workload to a managed compute service",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/reliability-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							if !a.HasService("EC2") {
								return true
							}
							return a.HasService("Auto Scaling", "ELB")
						},
					},
				},
			},
			{
				ID:     "rel-backup",
				Title:  "How do you back up data?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "rel-backups",
						Title:       "Back up stateful data",
						Description: "Stateful services are present without a backup mechanism",
						Severity:    model.SeverityMedium,
						Guidance:    "Use AWS Backup or service-native snapshots with a tested restore procedure",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/reliability-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							if a.HasService("Backup", "Glacier") {
								return true
							}
							// No stateful services means nothing to back up.
							return !a.HasService("RDS", "DynamoDB", "EFS", "EC2")
						},
					},
				},
			},
			{
				ID:     "rel-monitor",
				Title:  "How do you monitor workload health?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "rel-health-checks",
						Title:       "Monitor and alarm on health",
						Description: "No health monitoring is part of the architecture",
						Severity:    model.SeverityMedium,
						Guidance:    "Create CloudWatch alarms on error rates and latency; alarm on missing data, not just thresholds",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/reliability-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("CloudWatch")
						},
					},
				},
			},
			{
				ID:     "rel-decouple",
				Title:  "How do you design interactions to prevent cascading failures?",
				Weight: 1,
				Rules: []Rule{
					{
						ID:          "rel-decoupling",
						Title:       "Decouple components with messaging",
						Description: "Components interact without any queue or event layer between them",
						Severity:    model.SeverityMedium,
						Guidance:    "Put SQS or SNS between producers and consumers so bursts and downstream failures are absorbed",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/reliability-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("SQS", "SNS", "EventBridge", "Kinesis")
						},
					},
				},
			},
		},
	}
}
