package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every POS from the directory",
	Long: `Deletes all POS records. Assigned ids are not reused by later
creates. Refuses to run without --yes.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deleting all POS records")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	if !clearYes {
		return errors.New("refusing to clear the directory without --yes")
	}

	ctx := context.Background()
	cleanup, err := setupServices(ctx, "")
	if err != nil {
		return err
	}
	defer cleanup()

	if posService == nil {
		return errors.New("pos service not configured")
	}

	if err := posService.Clear(ctx); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}

	cmd.Println("Directory cleared.")
	return nil
}
