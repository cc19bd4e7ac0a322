package scan

import (
	"fmt"

	"github.com/bgdnvk/archlens/internal/model"
)

// Inventory is the raw result of one account scan. Mapping it onto an
// architecture record is pure, so it can be tested without AWS access.
type Inventory struct {
	Profile         string
	EC2Instances    []EC2Instance
	LambdaFunctions []LambdaFunction
	RDSInstances    []RDSInstance
	S3Buckets       []string
	IAMRoles        []string
	Alarms          []string
	Notes           []string
}

type EC2Instance struct {
	ID    string
	Type  string
	State string
}

type LambdaFunction struct {
	Name    string
	Runtime string
}

type RDSInstance struct {
	ID      string
	Engine  string
	MultiAZ bool
}

func (inv *Inventory) note(service string, err error) {
	inv.Notes = append(inv.Notes, fmt.Sprintf("%s scan failed: %v", service, err))
}

// Architecture maps the inventory onto an architecture record shaped the
// same way as inferred designs, one AWS-flagged component per service in
// use plus service refs. Scanned resources carry full confidence; the
// record exists, it was not inferred.
func (inv *Inventory) Architecture() *model.Architecture {
	arch := &model.Architecture{
		Name:          "Live AWS Environment",
		Description:   describeInventory(inv),
		Type:          deriveScanType(inv),
		Components:    []model.Component{},
		Services:      []model.ServiceRef{},
		Relationships: []model.Relationship{},
		Requirements:  []model.Requirement{},
		Constraints:   []model.Constraint{},
		Patterns:      []model.PatternMatch{},
		BestPractices: []model.Practice{},
		Confidence:    1.0,
	}
	if inv.Profile != "" {
		arch.Name = fmt.Sprintf("Live AWS Environment (%s)", inv.Profile)
	}

	addService := func(name, category, purpose string) {
		arch.Components = append(arch.Components, model.Component{
			ID:           model.Slug(name),
			Name:         name,
			Type:         category,
			Description:  purpose,
			IsAWSService: true,
		})
		arch.Services = append(arch.Services, model.ServiceRef{
			Name:       name,
			Category:   category,
			Purpose:    purpose,
			Confidence: 1.0,
		})
	}

	if len(inv.EC2Instances) > 0 {
		addService("EC2", "compute", fmt.Sprintf("%d instances deployed", len(inv.EC2Instances)))
	}
	if len(inv.LambdaFunctions) > 0 {
		addService("Lambda", "compute", fmt.Sprintf("%d functions deployed", len(inv.LambdaFunctions)))
	}
	if len(inv.RDSInstances) > 0 {
		addService("RDS", "database", fmt.Sprintf("%d database instances", len(inv.RDSInstances)))
	}
	if len(inv.S3Buckets) > 0 {
		addService("S3", "storage", fmt.Sprintf("%d buckets", len(inv.S3Buckets)))
	}
	if len(inv.IAMRoles) > 0 {
		addService("IAM", "security", fmt.Sprintf("%d roles defined", len(inv.IAMRoles)))
	}
	if len(inv.Alarms) > 0 {
		addService("CloudWatch", "management", fmt.Sprintf("%d alarms configured", len(inv.Alarms)))
	}

	for _, db := range inv.RDSInstances {
		if db.MultiAZ {
			arch.BestPractices = append(arch.BestPractices, model.Practice{
				Name:           "multi-az-deployment",
				Category:       "availability",
				IsBestPractice: true,
			})
			break
		}
	}

	return arch
}

func describeInventory(inv *Inventory) string {
	total := len(inv.EC2Instances) + len(inv.LambdaFunctions) + len(inv.RDSInstances) +
		len(inv.S3Buckets) + len(inv.IAMRoles) + len(inv.Alarms)
	if total == 0 {
		return "No resources were discovered in the scanned account"
	}
	return fmt.Sprintf("Architecture reconstructed from %d discovered resources", total)
}

func deriveScanType(inv *Inventory) string {
	switch {
	case len(inv.LambdaFunctions) > 0 && len(inv.EC2Instances) == 0:
		return "Serverless Architecture"
	case len(inv.EC2Instances) > 0:
		return "General AWS Architecture"
	default:
		return "General AWS Architecture"
	}
}
