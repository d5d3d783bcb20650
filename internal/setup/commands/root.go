package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/familyledger/finance-backend/internal/setup/config"
	"github.com/familyledger/finance-backend/internal/utils"
)

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "finance",
	Short: "Family finance backend",
	Long: `Family finance backend: the REST API over MongoDB, the recurring
payment scheduler and a terminal client to administer the data.

Settings come from config.yaml and FINANCE_ prefixed environment variables.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded into the environment")
}

// loadConfig reads the settings and configures the logger from them.
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if _, err := utils.NewLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, err
	}

	return cfg, nil
}
