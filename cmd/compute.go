package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Harel23432/FuelMap/fuel"
)

var (
	// CLI flags describing one control cycle's sensor snapshot
	rpm         int     // Engine speed
	load        int     // Manifold absolute pressure in kPa
	airMass     float64 // Inducted air mass in grams per cycle
	coolantTemp float64 // Coolant temperature in Celsius
	measuredAFR float64 // O2 sensor AFR reading
	explain     bool    // Print the per-stage breakdown
)

// computeCmd runs the pipeline for a single sensor snapshot.
var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute one cycle's injector pulse width",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		controller := loadController()

		reading := fuel.EngineReading{
			RPM:          rpm,
			Load:         load,
			AirMass:      airMass,
			CoolantTempC: coolantTemp,
			MeasuredAFR:  measuredAFR,
		}

		trace, err := controller.Trace(reading)
		if err != nil {
			logrus.Fatalf("Pulse width computation failed: %v", err)
		}

		logrus.Infof("rpm=%d load=%dkPa targetAFR=%.3f correctedAFR=%.3f",
			rpm, load, trace.BaseAFR, trace.CorrectedAFR)

		if explain {
			printTrace(trace)
		}
		fmt.Printf("Injector Pulse Width: %.4f ms\n", trace.PulseWidthMs)
	},
}

// printTrace displays every stage of the cycle computation.
func printTrace(tr fuel.CycleTrace) {
	fmt.Println("=== Cycle Breakdown ===")
	fmt.Printf("Base target AFR    : %.4f\n", tr.BaseAFR)
	fmt.Printf("Cold-start factor  : %.4f\n", tr.EnrichmentFactor)
	fmt.Printf("Enriched AFR       : %.4f\n", tr.EnrichedAFR)
	fmt.Printf("Closed-loop factor : %.4f\n", tr.CorrectionFactor)
	fmt.Printf("Corrected AFR      : %.4f\n", tr.CorrectedAFR)
	fmt.Printf("Fuel mass          : %.5f g\n", tr.FuelMassGrams)
	fmt.Printf("Pulse width        : %.4f ms\n", tr.PulseWidthMs)
}

// init sets up the compute flags
func init() {
	computeCmd.Flags().IntVar(&rpm, "rpm", 3500, "Engine speed in rpm")
	computeCmd.Flags().IntVar(&load, "load", 80, "Manifold absolute pressure in kPa")
	computeCmd.Flags().Float64Var(&airMass, "air-mass", 0.45, "Inducted air mass in grams per cycle")
	computeCmd.Flags().Float64Var(&coolantTemp, "coolant-temp", 90.0, "Coolant temperature in Celsius")
	computeCmd.Flags().Float64Var(&measuredAFR, "measured-afr", 14.7, "Measured AFR from the O2 sensor")
	computeCmd.Flags().BoolVar(&explain, "explain", false, "Print the per-stage breakdown")
}
