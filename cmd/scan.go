package cmd

import (
	"context"
	"fmt"

	"github.com/bgdnvk/archlens/internal/scan"
	"github.com/bgdnvk/archlens/internal/wellarch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	scanProfile  string
	scanValidate bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Build an architecture record from a live AWS account",
	Long: `Scan the configured AWS account and reconstruct an architecture record
from deployed resources (EC2, Lambda, RDS, S3, IAM, CloudWatch).

The result has the same shape as 'archlens analyze' output, so it can be
fed straight into 'archlens validate', or validated in one step with
--validate.

Examples:
  archlens scan
  archlens scan --profile prod --validate
  archlens scan > live.json && archlens validate -f live.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		debug := viper.GetBool("debug")

		var client *scan.Client
		var err error
		if scanProfile != "" {
			client, err = scan.NewClientWithProfile(ctx, scanProfile, debug)
		} else {
			client, err = scan.NewClient(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to create AWS client: %w", err)
		}

		inventory, err := client.Scan(ctx)
		if err != nil {
			return fmt.Errorf("account scan failed: %w", err)
		}

		arch := inventory.Architecture()

		if scanValidate {
			engine := wellarch.NewEngine()
			result := engine.Evaluate(arch)
			return printResult(result)
		}
		return printResult(arch)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanProfile, "profile", "", "AWS profile to use (default: SDK default chain)")
	scanCmd.Flags().BoolVar(&scanValidate, "validate", false, "run the Well-Architected review on the scanned architecture")
}
