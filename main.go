package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boqclean/config"
	"boqclean/handlers"
	"boqclean/logging"
	"boqclean/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile  string
		answers  handlers.Answers
		outDir   string
		format   string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "boqclean <workbook.xlsx|file.csv>",
		Short: "Interactively convert a Bill of Quantities spreadsheet into a clean table",
		Long: `Interactively convert a Bill of Quantities spreadsheet into a clean table.

The cleaner locates the header row, lets you choose and map columns, removes
sub totals and notes, rebuilds section labels from heading rows and cuts the
table after the last item with a unit of measure.

Example: boqclean GreenCurve_BOQ.xlsx --format xlsx`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.Output.Dir = outDir
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			if cmd.Flags().Changed("currency") {
				cfg.Output.Currency = currency
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

			session := handlers.NewSession(cfg, answers, cmd.InOrStdin(), cmd.OutOrStdout())
			_, err = session.Run(args[0])
			if errors.Is(err, services.ErrHeaderNotFound) {
				return fmt.Errorf("no header row confirmed in the first %d rows; nothing to clean", cfg.Header.ScanRows)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Load settings from this .env file (default .env if present)")
	cmd.Flags().StringVar(&answers.Sheet, "sheet", "", "Sheet to process")
	cmd.Flags().IntVar(&answers.HeaderRow, "header-row", 0, "1-based header row; skips header detection")
	cmd.Flags().StringVar(&answers.Columns, "columns", "", "Columns to keep, e.g. 2,3,4,6")
	cmd.Flags().StringVar(&answers.Mapping, "map", "", "Field mapping over the kept columns, e.g. Description=1,Quantity=2,Rate=3,UOM=4")
	cmd.Flags().BoolVarP(&answers.Yes, "yes", "y", false, "Accept the first header candidate and save without asking")
	cmd.Flags().StringVar(&outDir, "output-dir", "", "Folder for the cleaned file (env BOQ_OUTPUT_DIR)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: csv, xlsx or pdf (env BOQ_OUTPUT_FORMAT)")
	cmd.Flags().StringVar(&currency, "currency", "", "Amount format in summaries: INR or plain (env BOQ_CURRENCY)")

	return cmd
}
