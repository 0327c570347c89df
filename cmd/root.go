package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Harel23432/FuelMap/fuel"
)

var (
	// Persistent CLI flags shared by all subcommands
	calibrationPath string // Path to a YAML tune file (empty = stock tune)
	logLevel        string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "fuelmap",
	Short: "Fuel-delivery pipeline for a speed-density engine controller",
}

// setupLogging applies the --log flag before a subcommand runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadController builds the fuel controller from --calibration, falling
// back to the stock tune when the flag is unset.
func loadController() *fuel.FuelController {
	cal, err := resolveCalibration()
	if err != nil {
		logrus.Fatalf("Failed to load calibration: %v", err)
	}
	controller, err := cal.Build()
	if err != nil {
		logrus.Fatalf("Invalid calibration: %v", err)
	}
	return controller
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up the persistent flags and attaches subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&calibrationPath, "calibration", "", "Path to a YAML calibration (tune) file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(sweepCmd)
}
