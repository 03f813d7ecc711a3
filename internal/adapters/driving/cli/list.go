package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seuhd/campus-coffee/internal/core/domain"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all POS in the directory",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output the directory as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	cleanup, err := setupServices(ctx, "")
	if err != nil {
		return err
	}
	defer cleanup()

	if posService == nil {
		return errors.New("pos service not configured")
	}

	all, err := posService.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("listing pos failed: %w", err)
	}

	if listJSON {
		return outputPosJSON(cmd, all)
	}
	return outputPosTable(cmd, all)
}

func outputPosJSON(cmd *cobra.Command, all []domain.Pos) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal pos list: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputPosTable(cmd *cobra.Command, all []domain.Pos) error {
	if len(all) == 0 {
		cmd.Println("No POS found.")
		return nil
	}

	cmd.Printf("%d POS:\n\n", len(all))
	for i := range all {
		cmd.Printf("  [%d] %s (%s, %s)\n", all[i].ID, all[i].Name, all[i].Type, all[i].Campus)
		cmd.Printf("      %s\n", all[i].Address())
	}
	return nil
}
