package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bgdnvk/archlens/internal/model"
	"github.com/bgdnvk/archlens/internal/wellarch"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	validateFile     string
	validateDetailed bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Score an architecture against the Well-Architected checklist",
	Long: `Validate an architecture file against six pillars: Operational Excellence,
Security, Reliability, Performance Efficiency, Cost Optimization, and
Sustainability.

The input may be a full record produced by 'archlens analyze' or a partial
hand-written one; missing fields are treated as empty.

Examples:
  archlens validate -f architecture.json
  archlens validate -f architecture.yaml --detailed
  archlens analyze "..." > arch.json && archlens validate -f arch.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(validateFile)
		if err != nil {
			return fmt.Errorf("failed to read architecture file: %w", err)
		}

		var arch model.Architecture
		if strings.HasSuffix(validateFile, ".yaml") || strings.HasSuffix(validateFile, ".yml") {
			err = yaml.Unmarshal(data, &arch)
		} else {
			err = json.Unmarshal(data, &arch)
		}
		if err != nil {
			return fmt.Errorf("failed to parse architecture file %s: %w", validateFile, err)
		}

		engine := wellarch.NewEngine()
		result := engine.Evaluate(&arch)

		if validateDetailed {
			fmt.Println(result.DetailedReport)
			return nil
		}
		return printResult(result)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "architecture file (JSON or YAML)")
	validateCmd.Flags().BoolVar(&validateDetailed, "detailed", false, "print the flat text report instead of structured output")
	validateCmd.MarkFlagRequired("file")
}
