package wellarch

import "github.com/bgdnvk/archlens/internal/model"

func securityPillar() pillarDef {
	return pillarDef{
		Name:        "Security",
		Description: "Protect data, systems, and assets through risk assessment and mitigation",
		Questions: []Question{
			{
				ID:     "sec-identity",
				Title:  "How do you manage identities and permissions?",
				Weight: 3,
				Rules: []Rule{
					{
						ID:          "sec-iam",
						Title:       "Manage access with IAM",
						Description: "No identity and access management is part of the architecture",
						Severity:    model.SeverityCritical,
						Guidance:    "Define IAM roles with least-privilege policies for every component; use Cognito for end-user identity",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/security-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("IAM", "Cognito")
						},
					},
				},
			},
			{
				ID:     "sec-data",
				Title:  "How do you protect data at rest and in transit?",
				Weight: 3,
				Rules: []Rule{
					{
						ID:          "sec-encryption",
						Title:       "Encrypt data",
						Description: "No encryption service or security practice covers stored data",
						Severity:    model.SeverityHigh,
						Guidance:    "Encrypt data at rest with KMS-managed keys and enforce TLS for data in transit",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/security-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("KMS", "Secrets Manager") || a.HasPractice("security")
						},
					},
				},
			},
			{
				ID:     "sec-network",
				Title:  "How do you protect your networks?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "sec-network-protection",
						Title:       "Protect network boundaries",
						Description: "No network protection layer is part of the architecture",
						Severity:    model.SeverityHigh,
						Guidance:    "Isolate workloads in a VPC and put WAF in front of public endpoints; add Shield for DDoS-exposed workloads",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/security-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("WAF", "Shield", "VPC")
						},
					},
				},
			},
			{
				ID:     "sec-detection",
				Title:  "How do you detect and investigate security events?",
				Weight: 2,
				Rules: []Rule{
					{
						ID:          "sec-threat-detection",
						Title:       "Enable threat detection",
						Description: "No threat detection or audit trail is part of the architecture",
						Severity:    model.SeverityMedium,
						Guidance:    "Enable GuardDuty for threat detection and CloudTrail for an immutable audit trail",
						References:  []string{"https://docs.aws.amazon.com/wellarchitected/latest/security-pillar/welcome.html"},
						Check: func(a *model.Architecture) bool {
							return a.HasService("GuardDuty", "CloudTrail")
						},
					},
				},
			},
		},
	}
}
