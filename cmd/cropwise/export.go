package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sood122/yeild-pridiction/internal/calculator"
	"github.com/Sood122/yeild-pridiction/internal/exporter"
)

var (
	exportOut         string
	exportTemperature float64
	exportStep        float64
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export the score grid and model definition to an Excel workbook",
	Example: `  cropwise export --temperature 30 --step 25 --out grid.xlsx`,
	Args:    cobra.NoArgs,
	RunE:    runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "crop-score-grid.xlsx", "output file")
	exportCmd.Flags().Float64Var(&exportTemperature, "temperature", 30, "temperature held fixed across the grid (°C)")
	exportCmd.Flags().Float64Var(&exportStep, "step", exporter.DefaultStep, "rainfall and fertilizer grid step")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, _ := loadConfig(cmd)

	engine, err := calculator.NewDefaultEngine(cfg.Fuzzy.Resolution)
	if err != nil {
		return err
	}

	f, err := exporter.NewExporter(engine).Export(exporter.Options{
		Temperature: exportTemperature,
		Step:        exportStep,
		Progress: func(p exporter.Progress) {
			fmt.Fprintf(cmd.ErrOrStderr(), "[%3d%%] %s\n", p.Percent, p.Stage)
		},
	})
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(exportOut); err != nil {
		return fmt.Errorf("save %s: %w", exportOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOut)
	return nil
}
