package catalog

import "github.com/bgdnvk/archlens/internal/model"

// Pattern categories.
const (
	PatternCategoryWeb           = "web"
	PatternCategoryServerless    = "serverless"
	PatternCategoryMicroservices = "microservices"
	PatternCategoryEventDriven   = "event-driven"
	PatternCategoryData          = "data"
	PatternCategoryML            = "machine-learning"
	PatternCategoryHybrid        = "hybrid"
)

// builtinPatterns is the built-in pattern library. Read-only after init.
var builtinPatterns = []model.PatternEntry{
	{
		Name:        "three-tier web application",
		Category:    PatternCategoryWeb,
		Services:    []string{"ELB", "EC2", "RDS", "CloudFront", "Route 53"},
		UseCases:    []string{"web-application", "content-management"},
		Description: "Classic presentation, application, and persistence tiers behind a load balancer",
	},
	{
		Name:        "static website",
		Category:    PatternCategoryWeb,
		Services:    []string{"S3", "CloudFront", "Route 53"},
		UseCases:    []string{"web-application", "content-delivery"},
		Description: "Static site hosted from object storage behind a cdn",
	},
	{
		Name:        "serverless web application",
		Category:    PatternCategoryServerless,
		Services:    []string{"API Gateway", "Lambda", "DynamoDB", "S3", "CloudFront", "Cognito"},
		UseCases:    []string{"web-application", "mobile-backend"},
		Description: "Serverless api with managed authentication and nosql persistence",
	},
	{
		Name:        "serverless api",
		Category:    PatternCategoryServerless,
		Services:    []string{"API Gateway", "Lambda", "DynamoDB"},
		UseCases:    []string{"mobile-backend", "web-application"},
		Description: "Serverless rest endpoints backed by functions",
	},
	{
		Name:        "microservices on containers",
		Category:    PatternCategoryMicroservices,
		Services:    []string{"ECS", "EKS", "ELB", "API Gateway", "RDS", "ElastiCache"},
		UseCases:    []string{"web-application", "api-platform"},
		Description: "Independently deployable microservices running on container orchestration",
	},
	{
		Name:        "event-driven processing",
		Category:    PatternCategoryEventDriven,
		Services:    []string{"EventBridge", "SNS", "SQS", "Lambda", "Step Functions"},
		UseCases:    []string{"data-processing", "integration"},
		Description: "Decoupled producers and consumers connected through events and queues",
	},
	{
		Name:        "streaming analytics",
		Category:    PatternCategoryData,
		Services:    []string{"Kinesis", "Lambda", "S3", "Athena", "QuickSight"},
		UseCases:    []string{"real-time-analytics", "data-processing"},
		Description: "Real-time ingestion with streaming transforms and queryable storage",
	},
	{
		Name:        "data lake",
		Category:    PatternCategoryData,
		Services:    []string{"S3", "Glue", "Athena", "EMR", "QuickSight"},
		UseCases:    []string{"data-processing", "real-time-analytics"},
		Description: "Central raw storage with catalog, etl, and ad-hoc querying",
	},
	{
		Name:        "batch processing pipeline",
		Category:    PatternCategoryData,
		Services:    []string{"Batch", "S3", "Step Functions", "CloudWatch"},
		UseCases:    []string{"batch-processing", "data-processing"},
		Description: "Scheduled compute jobs orchestrated over staged datasets",
	},
	{
		Name:        "machine learning inference",
		Category:    PatternCategoryML,
		Services:    []string{"SageMaker", "Lambda", "API Gateway", "S3"},
		UseCases:    []string{"machine-learning"},
		Description: "Trained models served behind managed inference endpoints",
	},
	{
		Name:        "iot telemetry ingestion",
		Category:    PatternCategoryEventDriven,
		Services:    []string{"Kinesis", "Lambda", "DynamoDB", "S3"},
		UseCases:    []string{"iot", "real-time-analytics"},
		Description: "Device telemetry streamed into hot and cold storage paths",
	},
	{
		Name:        "hybrid connectivity",
		Category:    PatternCategoryHybrid,
		Services:    []string{"Direct Connect", "VPC", "Route 53"},
		UseCases:    []string{"migration", "integration"},
		Description: "On-premises workloads bridged into cloud networks",
	},
}
