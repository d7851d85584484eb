package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/hhsim/analysis"
	"github.com/sarchlab/hhsim/recording"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report spike metrics from a recorded run.",
	Long: `analyze reads the trajectory table of a recorded simulation ` +
		`database and reports the action potentials it contains.`,
	Run: func(cmd *cobra.Command, args []string) {
		dbFile, _ := cmd.Flags().GetString("db")
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		analyzeRecordedRun(dbFile, threshold)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("db", "",
		"recorded database file to analyze")
	analyzeCmd.Flags().Float64("threshold", 50.0,
		"spike detection threshold (mV)")

	err := analyzeCmd.MarkFlagRequired("db")
	if err != nil {
		panic(err)
	}
}

func analyzeRecordedRun(dbFile string, threshold float64) {
	reader := recording.NewReader(dbFile)
	defer reader.Close()

	reader.MapTable("trajectory", recording.TrajectorySample{})

	rows, total, err := reader.Query(
		context.Background(),
		"trajectory",
		recording.QueryParams{OrderBy: "Step"},
	)
	if err != nil {
		log.Fatalf("Error reading trajectory: %v", err)
	}

	if total == 0 {
		log.Fatalf("No trajectory samples found in %s", dbFile)
	}

	times := make([]float64, 0, len(rows))
	voltages := make([]float64, 0, len(rows))
	for _, row := range rows {
		sample := row.(*recording.TrajectorySample)
		times = append(times, sample.Time)
		voltages = append(voltages, sample.Voltage)
	}

	detector := &analysis.SpikeDetector{Threshold: threshold}
	report := detector.Analyze(times, voltages)

	fmt.Printf("Samples:       %d\n", total)
	fmt.Printf("Spikes:        %d\n", report.Count)
	fmt.Printf("Peak voltage:  %.4f mV\n", report.PeakVoltage)
	if report.Count >= 2 {
		fmt.Printf("Mean ISI:      %.4f ms\n", report.MeanISI)
	}
	if report.Count >= 1 {
		fmt.Printf("First spike:   %.2f ms\n", report.Times[0])
		fmt.Printf("Last spike:    %.2f ms\n", report.Times[report.Count-1])
	}
}
