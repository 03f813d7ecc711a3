package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/seuhd/campus-coffee/internal/core/domain"
)

var getCmd = &cobra.Command{
	Use:   "get [pos-id]",
	Short: "Show one POS",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("pos id must be an integer, got %q", args[0])
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

	pos, err := posService.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}

	printPos(cmd, pos)
	return nil
}

// printPos writes the full detail block for one POS.
func printPos(cmd *cobra.Command, pos *domain.Pos) {
	cmd.Printf("POS %d:\n", pos.ID)
	cmd.Printf("  Name:        %s\n", pos.Name)
	cmd.Printf("  Description: %s\n", pos.Description)
	cmd.Printf("  Type:        %s\n", pos.Type)
	cmd.Printf("  Campus:      %s\n", pos.Campus)
	cmd.Printf("  Address:     %s\n", pos.Address())
	cmd.Printf("  Created:     %s\n", pos.CreatedAt.Format(time.RFC3339))
	cmd.Printf("  Updated:     %s\n", pos.UpdatedAt.Format(time.RFC3339))
}
