package cmd

import (
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the built-in service catalog and pattern library",
}

var catalogServicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List known AWS services grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return printResult(cat.ServicesByCategory())
	},
}

var catalogPatternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List known architectural patterns grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return printResult(cat.PatternsByCategory())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogServicesCmd)
	catalogCmd.AddCommand(catalogPatternsCmd)
}
