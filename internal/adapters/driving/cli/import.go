package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var importExtract string

var importCmd = &cobra.Command{
	Use:   "import [node-id]",
	Short: "Import a POS from an OpenStreetMap node",
	Long: `Fetches the node from the OpenStreetMap API, derives the POS fields
from its tags and persists the result as a new directory entry.

With --file, the node is looked up in a local .osm XML extract instead
of the live API.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importExtract, "file", "", "Path to a local .osm extract to read the node from")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	nodeID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("node id must be an integer, got %q", args[0])
	}

	ctx := context.Background()
	cleanup, err := setupServices(ctx, importExtract)
	if err != nil {
		return err
	}
	defer cleanup()

	if posService == nil {
		return errors.New("pos service not configured")
	}

	pos, err := posService.ImportFromOsmNode(ctx, nodeID)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported POS from node %d:\n\n", nodeID)
	printPos(cmd, pos)
	return nil
}
