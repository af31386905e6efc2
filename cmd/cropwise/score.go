package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sood122/yeild-pridiction/internal/calculator"
	"github.com/Sood122/yeild-pridiction/internal/fuzzy"
	"github.com/Sood122/yeild-pridiction/internal/model"
)

var (
	scoreRainfall    float64
	scoreTemperature float64
	scoreFertilizer  float64
	scoreSeason      string
	scoreJSON        bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the recommendation score for one set of conditions",
	Example: `  cropwise score --rainfall 100 --temperature 30 --fertilizer 100
  cropwise score --rainfall 75 --temperature 25 --fertilizer 150 --season Rabi --json`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Float64Var(&scoreRainfall, "rainfall", 0, "rainfall in mm [0, 200]")
	scoreCmd.Flags().Float64Var(&scoreTemperature, "temperature", 0, "temperature in °C [10, 50]")
	scoreCmd.Flags().Float64Var(&scoreFertilizer, "fertilizer", 0, "fertilizer in kg/acre [0, 200]")
	scoreCmd.Flags().StringVar(&scoreSeason, "season", "", "season for crop suggestions (Kharif, Rabi, Zaid)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "print the full evaluation as JSON")

	for _, name := range []string{"rainfall", "temperature", "fertilizer"} {
		_ = scoreCmd.MarkFlagRequired(name)
	}
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, _ := loadConfig(cmd)

	engine, err := calculator.NewDefaultEngine(cfg.Fuzzy.Resolution)
	if err != nil {
		return err
	}

	rec, err := engine.Evaluate(model.Inputs{
		Rainfall:    scoreRainfall,
		Temperature: scoreTemperature,
		Fertilizer:  scoreFertilizer,
		Season:      scoreSeason,
	})
	if errors.Is(err, fuzzy.ErrUndefinedScore) {
		return fmt.Errorf("no rule fires for rainfall=%g temperature=%g fertilizer=%g: %w",
			scoreRainfall, scoreTemperature, scoreFertilizer, err)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scoreJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	for _, w := range rec.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	fmt.Fprintf(out, "Recommendation Score (0-10): %s (%s)\n", rec.Display, rec.Label)
	if scoreSeason != "" {
		printCrops(cmd, scoreSeason, rec.Crops)
	}
	return nil
}
