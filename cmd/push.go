package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/lead-import/internal/importer"
	"github.com/sells-group/lead-import/internal/rowstore"
)

var pushCSVPath string

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Import leads and contacts from CSV into Close",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		gw, err := initClose()
		if err != nil {
			return err
		}

		rows, err := rowstore.Load(pushCSVPath)
		if err != nil {
			return eris.Wrap(err, "push: load csv")
		}

		im := importer.New(gw, rows)
		if err := im.ResolveCustomFields(ctx); err != nil {
			return err
		}

		stats, err := im.Push(ctx)
		if err != nil {
			return eris.Wrap(err, "push")
		}

		zap.L().Info("push complete",
			zap.Int("leads", stats.Leads),
			zap.Int("contacts", stats.Contacts),
			zap.String("csv", pushCSVPath),
		)
		return nil
	},
}

func init() {
	pushCmd.Flags().StringVar(&pushCSVPath, "csv", "", "path to CSV file (required)")
	_ = pushCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(pushCmd)
}
