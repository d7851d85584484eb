package simulation_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hhsim/heun"
	"github.com/sarchlab/hhsim/hh"
	"github.com/sarchlab/hhsim/recording"
	"github.com/sarchlab/hhsim/simulation"
)

var _ = Describe("Simulation", func() {
	var (
		tempDir     string
		shortParams hh.Params
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "hhsim_test_")
		Expect(err).NotTo(HaveOccurred())

		shortParams = hh.DefaultParams()
		shortParams.TMax = 5.0
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("should run and return the final voltage", func() {
		s := simulation.MakeBuilder().
			WithParams(shortParams).
			Build()
		defer s.Terminate()

		finalVoltage := s.Run()

		want := heun.NewIntegrator(shortParams).Run().FinalVoltage()
		Expect(finalVoltage).To(Equal(want))
		Expect(s.Trajectory().Len()).To(Equal(shortParams.NumSamples()))
	})

	It("should have no trajectory before running", func() {
		s := simulation.MakeBuilder().
			WithParams(shortParams).
			Build()
		defer s.Terminate()

		Expect(s.Trajectory()).To(BeNil())
	})

	Context("with recording enabled", func() {
		var (
			outputPath string
			s          *simulation.Simulation
		)

		BeforeEach(func() {
			outputPath = filepath.Join(tempDir, "run")
			s = simulation.MakeBuilder().
				WithParams(shortParams).
				WithRecording().
				WithOutputFileName(outputPath).
				Build()
		})

		It("should record every trajectory sample", func() {
			s.Run()
			s.Terminate()

			reader := recording.NewReader(outputPath + ".sqlite3")
			defer reader.Close()

			reader.MapTable("trajectory", recording.TrajectorySample{})
			rows, total, err := reader.Query(
				context.Background(),
				"trajectory",
				recording.QueryParams{OrderBy: "Step"},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(shortParams.NumSamples()))

			first := rows[0].(*recording.TrajectorySample)
			Expect(first.Step).To(Equal(0))
			Expect(first.Voltage).To(Equal(10.6))
		})

		It("should record the run metadata", func() {
			s.Run()
			s.Terminate()

			reader := recording.NewReader(outputPath + ".sqlite3")
			defer reader.Close()

			reader.MapTable("run_log", recording.RunInfo{})
			rows, _, err := reader.Query(
				context.Background(),
				"run_log",
				recording.QueryParams{
					Where: "Property = ?",
					Args:  []any{"Final Voltage"},
				},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
		})
	})

	It("should decimate recorded samples by the sample interval", func() {
		outputPath := filepath.Join(tempDir, "decimated")
		s := simulation.MakeBuilder().
			WithParams(shortParams).
			WithRecording().
			WithSampleInterval(100).
			WithOutputFileName(outputPath).
			Build()

		s.Run()
		s.Terminate()

		reader := recording.NewReader(outputPath + ".sqlite3")
		defer reader.Close()

		reader.MapTable("trajectory", recording.TrajectorySample{})
		_, total, err := reader.Query(
			context.Background(),
			"trajectory",
			recording.QueryParams{},
		)
		Expect(err).NotTo(HaveOccurred())

		// Samples 0, 100, 200, 300, 400 out of 500.
		Expect(total).To(Equal(5))
	})

	It("should write a CSV trajectory when asked", func() {
		outputPath := filepath.Join(tempDir, "csvrun")
		s := simulation.MakeBuilder().
			WithParams(shortParams).
			WithCSV().
			WithSampleInterval(100).
			WithOutputFileName(outputPath).
			Build()

		s.Run()
		s.Terminate()

		content, err := os.ReadFile(outputPath + ".csv")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(
			HavePrefix("Step, Time, Voltage, NGate, MGate, HGate\n"))
	})

	It("should panic when an output name is set without a backend", func() {
		Expect(func() {
			simulation.MakeBuilder().
				WithOutputFileName("orphan").
				Build()
		}).To(Panic())
	})

	It("should panic on a non-positive sample interval", func() {
		Expect(func() {
			simulation.MakeBuilder().
				WithSampleInterval(0).
				Build()
		}).To(Panic())
	})
})
