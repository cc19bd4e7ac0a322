package wellarch

import "github.com/bgdnvk/archlens/internal/model"

func operationalExcellencePillar() pillarDef {
	return pillarDef{
		Name:        "Operational Excellence",
		Description: "Run and monitor systems to deliver business value and continually improve processes",
		Questions: []Question{
			{
				ID:     "ops-telemetry",
				Title:  "How do you understand the health of your workload?",
				Weight: 3,
				Rules: []Rule{
					{
						ID:          "ops-monitoring",
						Title:       "Add workload monitoring",
						Description: "No monitoring or observability service is part of the architecture",
						Severity:    model.SeverityHigh,
						Guidance:    "Add CloudWatch metrics and alarms for every component; add X-Ray tracing for distributed request paths",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/operational-excellence-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("CloudWatch", "X-Ray", "monitoring")
						},
					},
				},
			},
			{
				ID:     "ops-iac",
				Title:  "How do you provision and update your infrastructure?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "ops-infrastructure-as-code",
						Title:       "Define infrastructure as code",
						Description: "Infrastructure is not described through templates or code",
						Severity:    model.SeverityMedium,
						Guidance:    "Manage the stack with CloudFormation or CDK so environments are reproducible and reviewable",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/operational-excellence-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("CloudFormation", "CDK", "Terraform")
						},
					},
				},
			},
			{
				ID:     "ops-deploy",
				Title:  "How do you deploy changes?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "ops-deployment-automation",
						Title:       "Automate deployments",
						Description: "No deployment automation is part of the architecture",
						Severity:    model.SeverityMedium,
						Guidance:    "Use CodePipeline or an equivalent pipeline with staged rollouts and automatic rollback",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/operational-excellence-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("CodePipeline", "CodeDeploy", "pipeline")
						},
					},
				},
			},
			{
				ID:     "ops-docs",
				Title:  "How do you evolve operations over time?",
				Weight: 1,
				Rules: []Rule{
					{
						ID:          "ops-documented",
						Title:       "Document the workload",
						Description: "The architecture has no description of its purpose",
						Severity:    model.SeverityLow,
						Guidance:    "Record what the workload does and who operates it so runbooks have an anchor",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/operational-excellence-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.Description != ""
						},
					},
				},
			},
		},
	}
}
