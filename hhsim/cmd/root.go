// Package cmd provides the command-line interface for hhsim.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/hhsim/simulation"
)

// rootCmd represents the base command when called without any subcommands.
// With no flags it runs the stock simulation and prints the final membrane
// voltage to stdout.
var rootCmd = &cobra.Command{
	Use: "hhsim",
	Short: "hhsim simulates the electrical activity of a single " +
		"Hodgkin-Huxley membrane cell.",
	Long: `hhsim integrates the four-variable Hodgkin-Huxley system under a ` +
		`rectangular current pulse with Heun's method, and prints the final ` +
		`membrane voltage. The trajectory can optionally be recorded to a ` +
		`SQLite database or a CSV file for later analysis.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSimulation(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	rootCmd.Flags().Bool("record", false,
		"record the trajectory to a SQLite database")
	rootCmd.Flags().Bool("csv", false,
		"write the trajectory to a CSV file")
	rootCmd.Flags().Bool("progress", false,
		"log progress and resource usage during the run")
	rootCmd.Flags().String("output", "",
		"output file name, without extension")
	rootCmd.Flags().Int("sample-every", 100,
		"record every n-th trajectory sample")
}

func runSimulation(cmd *cobra.Command) {
	// A .env file can set the output name when the flag is not given.
	// A missing file is fine.
	_ = godotenv.Load()

	record, _ := cmd.Flags().GetBool("record")
	csv, _ := cmd.Flags().GetBool("csv")
	progress, _ := cmd.Flags().GetBool("progress")
	output, _ := cmd.Flags().GetString("output")
	sampleEvery, _ := cmd.Flags().GetInt("sample-every")

	if output == "" {
		output = os.Getenv("HHSIM_OUTPUT")
	}

	b := simulation.MakeBuilder().
		WithSampleInterval(sampleEvery)

	if record {
		b = b.WithRecording()
	}

	if csv {
		b = b.WithCSV()
	}

	if progress {
		b = b.WithProgress()
	}

	if output != "" && (record || csv) {
		b = b.WithOutputFileName(output)
	}

	s := b.Build()
	defer s.Terminate()

	finalVoltage := s.Run()

	fmt.Println(finalVoltage)
}
