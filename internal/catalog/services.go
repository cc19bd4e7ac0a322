package catalog

import "github.com/bgdnvk/archlens/internal/model"

// Service categories.
const (
	CategoryCompute     = "compute"
	CategoryStorage     = "storage"
	CategoryDatabase    = "database"
	CategoryNetworking  = "networking"
	CategorySecurity    = "security"
	CategoryIntegration = "integration"
	CategoryManagement  = "management"
	CategoryAnalytics   = "analytics"
	CategoryML          = "machine-learning"
)

// builtinServices is the full built-in AWS service table. Treated as
// read-only after init; accessors hand out copies.
var builtinServices = []model.ServiceEntry{
	// Compute
	{
		Name:        "EC2",
		Category:    CategoryCompute,
		Description: "Virtual servers in the cloud",
		Keywords:    []string{"ec2", "virtual machine", "vm", "instance", "virtual server", "compute instance"},
	},
	{
		Name:        "Lambda",
		Category:    CategoryCompute,
		Description: "Run code without provisioning servers",
		Keywords:    []string{"lambda", "serverless function", "function as a service", "faas"},
	},
	{
		Name:        "ECS",
		Category:    CategoryCompute,
		Description: "Fully managed container orchestration",
		Keywords:    []string{"ecs", "container service", "docker", "fargate task"},
	},
	{
		Name:        "EKS",
		Category:    CategoryCompute,
		Description: "Managed Kubernetes service",
		Keywords:    []string{"eks", "kubernetes", "k8s"},
	},
	{
		Name:        "Fargate",
		Category:    CategoryCompute,
		Description: "Serverless compute for containers",
		Keywords:    []string{"fargate", "serverless container"},
	},
	{
		Name:        "Elastic Beanstalk",
		Category:    CategoryCompute,
		Description: "Easy-to-use service for deploying web applications",
		Keywords:    []string{"elastic beanstalk", "beanstalk", "paas"},
	},
	{
		Name:        "Batch",
		Category:    CategoryCompute,
		Description: "Fully managed batch computing",
		Keywords:    []string{"aws batch", "batch job", "batch processing", "batch compute"},
	},

	// Storage
	{
		Name:        "S3",
		Category:    CategoryStorage,
		Description: "Object storage built to retrieve any amount of data",
		Keywords:    []string{"s3", "object storage", "bucket", "file storage", "static files", "blob storage"},
	},
	{
		Name:        "EBS",
		Category:    CategoryStorage,
		Description: "Block storage for EC2 instances",
		Keywords:    []string{"ebs", "block storage", "volume"},
	},
	{
		Name:        "EFS",
		Category:    CategoryStorage,
		Description: "Serverless, fully elastic file storage",
		Keywords:    []string{"efs", "elastic file system", "shared file system", "nfs"},
	},
	{
		Name:        "Glacier",
		Category:    CategoryStorage,
		Description: "Low-cost archive storage",
		Keywords:    []string{"glacier", "archive", "cold storage", "long-term storage"},
	},
	{
		Name:        "Backup",
		Category:    CategoryStorage,
		Description: "Centralized backup across AWS services",
		Keywords:    []string{"aws backup", "backup", "restore", "disaster recovery"},
	},

	// Database
	{
		Name:        "RDS",
		Category:    CategoryDatabase,
		Description: "Managed relational database service",
		Keywords:    []string{"rds", "relational database", "mysql", "postgres", "postgresql", "sql database", "mariadb"},
	},
	{
		Name:        "DynamoDB",
		Category:    CategoryDatabase,
		Description: "Fast, flexible NoSQL database",
		Keywords:    []string{"dynamodb", "dynamo", "nosql", "key-value", "document database"},
	},
	{
		Name:        "Aurora",
		Category:    CategoryDatabase,
		Description: "High performance managed relational database",
		Keywords:    []string{"aurora", "aurora serverless"},
	},
	{
		Name:        "ElastiCache",
		Category:    CategoryDatabase,
		Description: "In-memory caching service",
		Keywords:    []string{"elasticache", "redis", "memcached", "in-memory cache"},
	},
	{
		Name:        "Redshift",
		Category:    CategoryDatabase,
		Description: "Fast, simple, cost-effective data warehouse",
		Keywords:    []string{"redshift", "data warehouse", "warehouse", "olap"},
	},
	{
		Name:        "DocumentDB",
		Category:    CategoryDatabase,
		Description: "Managed document database with MongoDB compatibility",
		Keywords:    []string{"documentdb", "mongodb", "mongo"},
	},

	// Networking
	{
		Name:        "VPC",
		Category:    CategoryNetworking,
		Description: "Isolated cloud resources",
		Keywords:    []string{"vpc", "virtual private cloud", "private network", "subnet"},
	},
	{
		Name:        "CloudFront",
		Category:    CategoryNetworking,
		Description: "Global content delivery network",
		Keywords:    []string{"cloudfront", "cdn", "content delivery", "edge caching"},
	},
	{
		Name:        "Route 53",
		Category:    CategoryNetworking,
		Description: "Scalable domain name system",
		Keywords:    []string{"route 53", "route53", "dns", "domain"},
	},
	{
		Name:        "API Gateway",
		Category:    CategoryNetworking,
		Description: "Create, publish, and manage APIs",
		Keywords:    []string{"api gateway", "rest api", "http api", "api endpoint", "websocket api"},
	},
	{
		Name:        "ELB",
		Category:    CategoryNetworking,
		Description: "Distribute incoming application traffic",
		Keywords:    []string{"elb", "load balancer", "load balancing", "alb", "application load balancer", "nlb"},
	},
	{
		Name:        "Direct Connect",
		Category:    CategoryNetworking,
		Description: "Dedicated network connection to AWS",
		Keywords:    []string{"direct connect", "dedicated connection", "on-premises connection"},
	},

	// Security
	{
		Name:        "IAM",
		Category:    CategorySecurity,
		Description: "Manage access to AWS resources",
		Keywords:    []string{"iam", "identity and access", "access management", "permissions", "roles", "policies"},
	},
	{
		Name:        "KMS",
		Category:    CategorySecurity,
		Description: "Managed creation and control of encryption keys",
		Keywords:    []string{"kms", "key management", "encryption key", "encrypt"},
	},
	{
		Name:        "WAF",
		Category:    CategorySecurity,
		Description: "Protect web applications from common exploits",
		Keywords:    []string{"waf", "web application firewall", "firewall"},
	},
	{
		Name:        "GuardDuty",
		Category:    CategorySecurity,
		Description: "Intelligent threat detection",
		Keywords:    []string{"guardduty", "threat detection", "intrusion detection"},
	},
	{
		Name:        "Cognito",
		Category:    CategorySecurity,
		Description: "Identity management for applications",
		Keywords:    []string{"cognito", "user pool", "user authentication", "sign up", "identity provider"},
	},
	{
		Name:        "Secrets Manager",
		Category:    CategorySecurity,
		Description: "Rotate, manage, and retrieve secrets",
		Keywords:    []string{"secrets manager", "secret", "credential storage", "api key storage"},
	},
	{
		Name:        "Shield",
		Category:    CategorySecurity,
		Description: "Managed DDoS protection",
		Keywords:    []string{"shield", "ddos", "ddos protection"},
	},

	// Integration
	{
		Name:        "SQS",
		Category:    CategoryIntegration,
		Description: "Fully managed message queues",
		Keywords:    []string{"sqs", "message queue", "queue", "queuing"},
	},
	{
		Name:        "SNS",
		Category:    CategoryIntegration,
		Description: "Pub/sub messaging and mobile notifications",
		Keywords:    []string{"sns", "notification", "pub/sub", "pubsub", "push notification", "topic"},
	},
	{
		Name:        "EventBridge",
		Category:    CategoryIntegration,
		Description: "Serverless event bus",
		Keywords:    []string{"eventbridge", "event bus", "event bridge", "event routing"},
	},
	{
		Name:        "Step Functions",
		Category:    CategoryIntegration,
		Description: "Visual workflows for distributed applications",
		Keywords:    []string{"step functions", "state machine", "workflow orchestration"},
	},
	{
		Name:        "Kinesis",
		Category:    CategoryIntegration,
		Description: "Collect, process, and analyze real-time streaming data",
		Keywords:    []string{"kinesis", "stream", "streaming data", "data stream", "firehose"},
	},
	{
		Name:        "AppSync",
		Category:    CategoryIntegration,
		Description: "Managed GraphQL APIs",
		Keywords:    []string{"appsync", "graphql"},
	},

	// Management
	{
		Name:        "CloudWatch",
		Category:    CategoryManagement,
		Description: "Monitoring and observability for AWS resources",
		Keywords:    []string{"cloudwatch", "monitoring", "metrics", "alarms", "observability", "logging", "logs"},
	},
	{
		Name:        "CloudTrail",
		Category:    CategoryManagement,
		Description: "Track user activity and API usage",
		Keywords:    []string{"cloudtrail", "audit", "audit trail", "api logging"},
	},
	{
		Name:        "Auto Scaling",
		Category:    CategoryManagement,
		Description: "Scale resources to meet demand",
		Keywords:    []string{"auto scaling", "autoscaling", "auto-scaling", "scale out", "scale up"},
	},
	{
		Name:        "CloudFormation",
		Category:    CategoryManagement,
		Description: "Model and provision resources with templates",
		Keywords:    []string{"cloudformation", "infrastructure as code", "iac", "stack template"},
	},
	{
		Name:        "Systems Manager",
		Category:    CategoryManagement,
		Description: "Operational hub for AWS resources",
		Keywords:    []string{"systems manager", "ssm", "parameter store", "patch management"},
	},
	{
		Name:        "X-Ray",
		Category:    CategoryManagement,
		Description: "Analyze and debug distributed applications",
		Keywords:    []string{"x-ray", "xray", "tracing", "distributed tracing"},
	},

	// Analytics
	{
		Name:        "Athena",
		Category:    CategoryAnalytics,
		Description: "Query data in S3 using SQL",
		Keywords:    []string{"athena", "query s3", "serverless query"},
	},
	{
		Name:        "EMR",
		Category:    CategoryAnalytics,
		Description: "Big data processing with open-source frameworks",
		Keywords:    []string{"emr", "hadoop", "spark", "big data processing"},
	},
	{
		Name:        "Glue",
		Category:    CategoryAnalytics,
		Description: "Serverless data integration and ETL",
		Keywords:    []string{"glue", "etl", "data catalog", "data integration"},
	},
	{
		Name:        "QuickSight",
		Category:    CategoryAnalytics,
		Description: "Business intelligence dashboards",
		Keywords:    []string{"quicksight", "dashboard", "business intelligence", "bi tool", "visualization"},
	},
	{
		Name:        "OpenSearch",
		Category:    CategoryAnalytics,
		Description: "Managed search and analytics",
		Keywords:    []string{"opensearch", "elasticsearch", "full-text search", "search engine"},
	},

	// Machine learning
	{
		Name:        "SageMaker",
		Category:    CategoryML,
		Description: "Build, train, and deploy machine learning models",
		Keywords:    []string{"sagemaker", "machine learning", "ml model", "model training", "model inference"},
	},
	{
		Name:        "Rekognition",
		Category:    CategoryML,
		Description: "Image and video analysis",
		Keywords:    []string{"rekognition", "image recognition", "image analysis", "video analysis"},
	},
	{
		Name:        "Comprehend",
		Category:    CategoryML,
		Description: "Natural language processing of text",
		Keywords:    []string{"comprehend", "sentiment analysis", "text analysis"},
	},
	{
		Name:        "Bedrock",
		Category:    CategoryML,
		Description: "Build with foundation models",
		Keywords:    []string{"bedrock", "foundation model", "generative ai", "llm"},
	},
}
