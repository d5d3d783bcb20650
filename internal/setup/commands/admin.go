package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/familyledger/finance-backend/internal/admin/resources"
	"github.com/familyledger/finance-backend/internal/admin/tui"
	"github.com/familyledger/finance-backend/internal/client"
)

var (
	adminUrl  string
	adminUser string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer workspaces, assets, transactions and users in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		baseUrl := adminUrl
		if baseUrl == "" {
			baseUrl = cfg.Admin.BaseUrl
		}

		location, err := cfg.Location()
		if err != nil {
			return fmt.Errorf("recurring.timezone: %w", err)
		}

		c, err := client.New(baseUrl)
		if err != nil {
			return err
		}
		return tui.Run(cmd.Context(), c, adminUser, resources.Clock{Location: location})
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)

	adminCmd.Flags().StringVar(&adminUrl, "url", "", "API base url (default admin.base_url)")
	adminCmd.Flags().StringVar(&adminUser, "user", "", "User name prefilled on the login screen")
}
