// Package scan builds an architecture record from resources actually
// deployed in an AWS account, so an existing environment can be put through
// the same Well-Architected review as an inferred design.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Client struct {
	cfg        aws.Config
	profile    string
	debug      bool
	ec2        *ec2.Client
	lambda     *lambda.Client
	rds        *rds.Client
	s3         *s3.Client
	iam        *iam.Client
	cloudwatch *cloudwatch.Client
}

func NewClient(ctx context.Context) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return newFromConfig(cfg, "", false), nil
}

// awsCredentialsFromCLI represents AWS credentials returned by the CLI.
type awsCredentialsFromCLI struct {
	Version         int    `json:"Version"`
	AccessKeyId     string `json:"AccessKeyId"`
	SecretAccessKey string `json:"SecretAccessKey"`
	SessionToken    string `json:"SessionToken"`
	Expiration      string `json:"Expiration"`
}

// getCredentialsFromCLI uses the AWS CLI to get fresh credentials for the
// profile. For SSO profiles this works better than the SDK default chain.
func getCredentialsFromCLI(ctx context.Context, profile string) (*awsCredentialsFromCLI, error) {
	cmd := exec.CommandContext(ctx, "aws", "configure", "export-credentials", "--profile", profile, "--format", "process")
	cmd.Env = append(os.Environ(), fmt.Sprintf("AWS_PROFILE=%s", profile))

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials from AWS CLI: %w", err)
	}

	var creds awsCredentialsFromCLI
	if err := json.Unmarshal(output, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse AWS CLI credentials response: %w", err)
	}

	return &creds, nil
}

func NewClientWithProfile(ctx context.Context, profile string, debug bool) (*Client, error) {
	creds, err := getCredentialsFromCLI(ctx, profile)
	if err != nil {
		// Fallback to standard SDK approach
		cfg, err := config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config for profile %s: %w", profile, err)
		}
		return newFromConfig(cfg, profile, debug), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			creds.AccessKeyId,
			creds.SecretAccessKey,
			creds.SessionToken,
		)),
		config.WithSharedConfigProfile(profile),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config with CLI credentials for profile %s: %w", profile, err)
	}

	return newFromConfig(cfg, profile, debug), nil
}

func newFromConfig(cfg aws.Config, profile string, debug bool) *Client {
	return &Client{
		cfg:        cfg,
		profile:    profile,
		debug:      debug,
		ec2:        ec2.NewFromConfig(cfg),
		lambda:     lambda.NewFromConfig(cfg),
		rds:        rds.NewFromConfig(cfg),
		s3:         s3.NewFromConfig(cfg),
		iam:        iam.NewFromConfig(cfg),
		cloudwatch: cloudwatch.NewFromConfig(cfg),
	}
}

// Scan inventories the account and maps what it finds onto an architecture
// record. Individual service failures are recorded as notes rather than
// aborting the whole scan, since partial visibility is still reviewable.
func (c *Client) Scan(ctx context.Context) (*Inventory, error) {
	inv := &Inventory{Profile: c.profile}

	if err := c.scanEC2(ctx, inv); err != nil {
		inv.note("ec2", err)
	}
	if err := c.scanLambda(ctx, inv); err != nil {
		inv.note("lambda", err)
	}
	if err := c.scanRDS(ctx, inv); err != nil {
		inv.note("rds", err)
	}
	if err := c.scanS3(ctx, inv); err != nil {
		inv.note("s3", err)
	}
	if err := c.scanIAM(ctx, inv); err != nil {
		inv.note("iam", err)
	}
	if err := c.scanCloudWatch(ctx, inv); err != nil {
		inv.note("cloudwatch", err)
	}

	if c.debug {
		fmt.Printf("Scan complete: %d EC2, %d Lambda, %d RDS, %d S3 buckets, %d IAM roles, %d alarms\n",
			len(inv.EC2Instances), len(inv.LambdaFunctions), len(inv.RDSInstances),
			len(inv.S3Buckets), len(inv.IAMRoles), len(inv.Alarms))
		for _, n := range inv.Notes {
			fmt.Println("  note:", n)
		}
	}

	return inv, nil
}

func (c *Client) scanEC2(ctx context.Context, inv *Inventory) error {
	result, err := c.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return err
	}
	for _, reservation := range result.Reservations {
		for _, instance := range reservation.Instances {
			inv.EC2Instances = append(inv.EC2Instances, EC2Instance{
				ID:    aws.ToString(instance.InstanceId),
				Type:  string(instance.InstanceType),
				State: string(instance.State.Name),
			})
		}
	}
	return nil
}

func (c *Client) scanLambda(ctx context.Context, inv *Inventory) error {
	result, err := c.lambda.ListFunctions(ctx, &lambda.ListFunctionsInput{})
	if err != nil {
		return err
	}
	for _, fn := range result.Functions {
		inv.LambdaFunctions = append(inv.LambdaFunctions, LambdaFunction{
			Name:    aws.ToString(fn.FunctionName),
			Runtime: string(fn.Runtime),
		})
	}
	return nil
}

func (c *Client) scanRDS(ctx context.Context, inv *Inventory) error {
	result, err := c.rds.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{})
	if err != nil {
		return err
	}
	for _, db := range result.DBInstances {
		inv.RDSInstances = append(inv.RDSInstances, RDSInstance{
			ID:      aws.ToString(db.DBInstanceIdentifier),
			Engine:  aws.ToString(db.Engine),
			MultiAZ: aws.ToBool(db.MultiAZ),
		})
	}
	return nil
}

func (c *Client) scanS3(ctx context.Context, inv *Inventory) error {
	result, err := c.s3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return err
	}
	for _, bucket := range result.Buckets {
		inv.S3Buckets = append(inv.S3Buckets, aws.ToString(bucket.Name))
	}
	return nil
}

func (c *Client) scanIAM(ctx context.Context, inv *Inventory) error {
	result, err := c.iam.ListRoles(ctx, &iam.ListRolesInput{})
	if err != nil {
		return err
	}
	for _, role := range result.Roles {
		inv.IAMRoles = append(inv.IAMRoles, aws.ToString(role.RoleName))
	}
	return nil
}

func (c *Client) scanCloudWatch(ctx context.Context, inv *Inventory) error {
	result, err := c.cloudwatch.DescribeAlarms(ctx, &cloudwatch.DescribeAlarmsInput{})
	if err != nil {
		return err
	}
	for _, alarm := range result.MetricAlarms {
		inv.Alarms = append(inv.Alarms, aws.ToString(alarm.AlarmName))
	}
	return nil
}
