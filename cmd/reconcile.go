package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"flat-monitor/core/metrics"
	"flat-monitor/core/reconcile"
	"flat-monitor/feature/flats"
	"flat-monitor/feature/flats/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileFile   string
	reconcileReplay string
	reconcileDryRun bool
)

// reconcileCmd runs one pass and prints its report.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one reconciliation pass and print the report",
	Long: `Runs one reconciliation pass and prints the change report.

Without flags the current listings are fetched from the API. A snapshot can
instead be given as a JSON file or replayed from the snapshot archive.

Examples:
  # Fetch and reconcile
  reconcile

  # Reconcile a local snapshot without writing the store
  reconcile --file snapshot.json --dry-run

  # Replay the newest archived snapshot
  reconcile --replay latest`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFile, "file", "", "Reconcile the JSON array of flats in this file")
	reconcileCmd.Flags().StringVar(&reconcileReplay, "replay", "", "Replay an archived snapshot by name, or 'latest'")
	reconcileCmd.Flags().BoolVar(&reconcileDryRun, "dry-run", false, "Compute the report without writing the store")
	reconcileCmd.MarkFlagsMutuallyExclusive("file", "replay")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	svc := rt.service(metrics.New())
	opts := reconcile.Options{DryRun: reconcileDryRun}

	var res *flats.Result
	switch {
	case reconcileFile != "":
		snapshot, err := readSnapshotFile(reconcileFile)
		if err != nil {
			return err
		}
		res, err = svc.Reconcile(ctx, snapshot, opts)
		if err != nil {
			return err
		}
	case reconcileReplay != "":
		snapshot, err := loadArchived(ctx, rt, reconcileReplay)
		if err != nil {
			return err
		}
		res, err = svc.Reconcile(ctx, snapshot, opts)
		if err != nil {
			return err
		}
	case reconcileDryRun:
		return fmt.Errorf("--dry-run needs --file or --replay")
	default:
		res, err = svc.RefreshFromSource(ctx)
		if err != nil {
			return err
		}
	}

	rt.log.Info("Reconciliation report",
		zap.String("run_id", res.RunID),
		zap.Bool("dry_run", res.DryRun),
		zap.Int("total", res.Changes.Total),
		zap.Int("added", res.Changes.Added),
		zap.Int("removed", res.Changes.Removed),
		zap.Int("edited", res.Changes.Edited),
		zap.Int("unchanged", res.Changes.Unchanged),
	)
	fmt.Fprintln(cmd.OutOrStdout(), res.Report)

	if res.DryRun {
		rt.log.Info("Dry-run mode: No changes were made.")
	}
	return nil
}

func readSnapshotFile(path string) ([]models.Flat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snapshot []models.Flat
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

func loadArchived(ctx context.Context, rt *runtime, name string) ([]models.Flat, error) {
	if rt.archive == nil {
		return nil, fmt.Errorf("snapshot archive is not configured (set STORAGE_ENDPOINT)")
	}
	if name == "latest" {
		latest, err := rt.archive.Latest(ctx)
		if err != nil {
			return nil, err
		}
		name = latest
	}
	rt.log.Info("Replaying archived snapshot", zap.String("snapshot", name))
	return rt.archive.Load(ctx, name)
}
