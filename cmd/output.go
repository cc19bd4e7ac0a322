package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bgdnvk/archlens/internal/catalog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// loadCatalog builds the catalog, applying the overlay file when one is
// configured.
func loadCatalog() (*catalog.Catalog, error) {
	overlay := viper.GetString("catalog_overlay")
	if overlay == "" {
		return catalog.New(), nil
	}
	c, err := catalog.NewWithOverlay(overlay)
	if err != nil {
		return nil, err
	}
	if viper.GetBool("debug") {
		fmt.Printf("Loaded catalog overlay from %s\n", overlay)
	}
	return c, nil
}

// printResult writes v to stdout in the configured output format.
func printResult(v any) error {
	switch viper.GetString("output_format") {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal output as YAML: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	case "json", "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output as JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected json or yaml)", viper.GetString("output_format"))
	}
}
