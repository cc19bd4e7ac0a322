package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "archlens",
	Short: "Turn plain-language requirements into scored AWS architectures",
	Long: `Archlens reads infrastructure requirements written in plain language,
infers a structured AWS architecture from them, and scores architectures
against a Well-Architected style checklist. All inference is deterministic
keyword matching against a built-in service catalog; the same input always
produces the same output.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.archlens.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output (shows inference diagnostics)")
	rootCmd.PersistentFlags().String("catalog", "", "YAML overlay file extending the built-in service catalog")
	rootCmd.PersistentFlags().String("format", "json", "output format: json, yaml")

	// TODO: add error return here
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("catalog_overlay", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("format"))

	viper.SetDefault("output_format", "json")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".archlens")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}
