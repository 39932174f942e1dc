package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/lead-import/internal/aggregate"
	"github.com/sells-group/lead-import/internal/importer"
	"github.com/sells-group/lead-import/internal/model"
	"github.com/sells-group/lead-import/internal/normalize"
	"github.com/sells-group/lead-import/internal/report"
	"github.com/sells-group/lead-import/internal/rowstore"
)

var (
	runCSVPath string
	runStart   string
	runEnd     string
	runOut     string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: push to Close, then write the rollup report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		// Validate the window before touching the remote store.
		startStorage, err := normalize.DisplayToStorage(runStart)
		if err != nil {
			return eris.Wrap(err, "run: window start")
		}
		endStorage, err := normalize.DisplayToStorage(runEnd)
		if err != nil {
			return eris.Wrap(err, "run: window end")
		}

		gw, err := initClose()
		if err != nil {
			return err
		}

		rows, err := rowstore.Load(runCSVPath)
		if err != nil {
			return eris.Wrap(err, "run: load csv")
		}

		st, err := initStore()
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		run, err := st.CreateRun(ctx, runCSVPath, startStorage, endStorage)
		if err != nil {
			return err
		}
		fail := func(err error) error {
			if uerr := st.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed); uerr != nil {
				zap.L().Warn("run: mark failed", zap.String("run_id", run.ID), zap.Error(uerr))
			}
			return err
		}

		if err := st.UpdateRunStatus(ctx, run.ID, model.RunStatusPushing); err != nil {
			return err
		}
		im := importer.New(gw, rows)
		if err := im.ResolveCustomFields(ctx); err != nil {
			return fail(err)
		}
		stats, err := im.Push(ctx)
		if err != nil {
			return fail(eris.Wrap(err, "run: push"))
		}

		if err := st.UpdateRunStatus(ctx, run.ID, model.RunStatusAggregating); err != nil {
			return err
		}
		agg, err := aggregate.New(rows, runStart, runEnd)
		if err != nil {
			return fail(err)
		}
		if err := agg.Run(); err != nil {
			return fail(eris.Wrap(err, "run: aggregate"))
		}

		reportRows := agg.Report()
		if err := report.WriteCSV(runOut, reportRows); err != nil {
			return fail(err)
		}

		result := &model.RunResult{
			Leads:      stats.Leads,
			Contacts:   stats.Contacts,
			ReportRows: len(reportRows),
			ReportPath: runOut,
		}
		if err := st.UpdateRunResult(ctx, run.ID, result); err != nil {
			return err
		}

		zap.L().Info("run complete",
			zap.String("run_id", run.ID),
			zap.Int("leads", result.Leads),
			zap.Int("contacts", result.Contacts),
			zap.Int("report_rows", result.ReportRows),
		)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runCSVPath, "csv", "", "path to CSV file (required)")
	runCmd.Flags().StringVar(&runStart, "start", "", "window start, DD.MM.YYYY (required)")
	runCmd.Flags().StringVar(&runEnd, "end", "", "window end, DD.MM.YYYY (required)")
	runCmd.Flags().StringVar(&runOut, "out", "output.csv", "report output path")
	_ = runCmd.MarkFlagRequired("csv")
	_ = runCmd.MarkFlagRequired("start")
	_ = runCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(runCmd)
}
