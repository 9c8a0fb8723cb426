package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file> [script...]",
	Short: "Save the populated pool for later builds",
	Long:  "Run the declaration scripts and save the unresolved pool. Load it again with --from.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSnapshot,
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, err := loadEngine(context.Background(), cfg, args[1:])
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := e.SaveSnapshot(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Saved %d objects to %s\n", e.Pool().Total(), args[0])
	return nil
}
