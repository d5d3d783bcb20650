package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/familyledger/finance-backend/internal/setup/factory"
)

var workspaceId string

var recurringCmd = &cobra.Command{
	Use:   "recurring",
	Short: "Recurring payment maintenance",
}

var recurringUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run the recurring payment update once",
	Long: `Expire the recurring payments past their end date and store the
payments that became due, like the scheduled job does.

Examples:
  finance recurring update                       # every workspace
  finance recurring update --workspace <id>      # one workspace`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecurringUpdate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recurringCmd)
	recurringCmd.AddCommand(recurringUpdateCmd)

	recurringUpdateCmd.Flags().StringVar(&workspaceId, "workspace", "", "Only update this workspace")
}

func runRecurringUpdate(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	app, closeAll, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeAll()

	task := factory.MakeRecurringPaymentsTask(app)

	if workspaceId == "" {
		return task.Run(ctx)
	}

	id, err := primitive.ObjectIDFromHex(workspaceId)
	if err != nil {
		return fmt.Errorf("invalid workspace id %q", workspaceId)
	}

	result, err := task.RunWorkspace(ctx, id)
	if err != nil {
		return err
	}
	if result.Skipped {
		log.WithField("workspace", workspaceId).Warn("Workspace is being updated by another process")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "workspace %s: %d generated, %d expired\n", workspaceId, result.Generated, result.Expired)
	return nil
}
