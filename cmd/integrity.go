package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"flat-monitor/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the flats table and the snapshot archive",
	Long:  `Verifies that the flats table carries every expected column and reports the state of the snapshot bucket. Use --fix to create a missing bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		svc := integrity.NewService(rt.db, rt.storage, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, rt.log)

		if fixFlag {
			if rt.storage == nil {
				rt.log.Warn("Object storage is not configured, nothing to fix")
			} else if err := svc.FixArchive(ctx); err != nil {
				return fmt.Errorf("failed to fix archive: %w", err)
			}
		}

		report := svc.Report(ctx)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}

		rt.log.Info("Integrity check completed", zap.Int("checks", len(report)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the snapshot bucket when missing")
}
