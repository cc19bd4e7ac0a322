package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bgdnvk/archlens/internal/nlp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [requirements text]",
	Short: "Infer an AWS architecture from plain-language requirements",
	Long: `Analyze free-form requirements text and print the inferred architecture.

The text is matched against the built-in service catalog and pattern
library; detected services, components, relationships, requirements, and
constraints are assembled into one architecture record with a confidence
score and a validation block.

Examples:
  archlens analyze "Build a serverless web application with Lambda and S3"
  archlens analyze --format yaml "Microservices on EKS with RDS, needs high availability"
  archlens analyze "$(cat requirements.txt)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		debug := viper.GetBool("debug")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		pipeline := nlp.NewPipeline(cat)
		arch, err := pipeline.AnalyzeOrFallback(text)
		if err != nil {
			// The fallback record is a legitimate result; report the cause
			// and keep going.
			fmt.Fprintf(os.Stderr, "Warning: analysis failed, returning basic record: %v\n", err)
		}

		if debug {
			fmt.Printf("Inferred %d components, %d services, confidence %.2f\n",
				len(arch.Components), len(arch.Services), arch.Confidence)
		}

		return printResult(arch)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
