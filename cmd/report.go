package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/lead-import/internal/aggregate"
	"github.com/sells-group/lead-import/internal/report"
	"github.com/sells-group/lead-import/internal/rowstore"
)

var (
	reportCSVPath string
	reportStart   string
	reportEnd     string
	reportOut     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the per-state revenue rollup for a founding-date window",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rows, err := rowstore.Load(reportCSVPath)
		if err != nil {
			return eris.Wrap(err, "report: load csv")
		}

		agg, err := aggregate.New(rows, reportStart, reportEnd)
		if err != nil {
			return err
		}
		if err := agg.Run(); err != nil {
			return eris.Wrap(err, "report: aggregate")
		}

		reportRows := agg.Report()
		if err := report.WriteCSV(reportOut, reportRows); err != nil {
			return err
		}

		zap.L().Info("report complete",
			zap.Int("states", len(reportRows)),
			zap.String("out", reportOut),
		)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportCSVPath, "csv", "", "path to CSV file (required)")
	reportCmd.Flags().StringVar(&reportStart, "start", "", "window start, DD.MM.YYYY (required)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "window end, DD.MM.YYYY (required)")
	reportCmd.Flags().StringVar(&reportOut, "out", "output.csv", "report output path")
	_ = reportCmd.MarkFlagRequired("csv")
	_ = reportCmd.MarkFlagRequired("start")
	_ = reportCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(reportCmd)
}
