package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Harel23432/FuelMap/fuel"
)

var (
	// CLI flags fixing the sweep's non-table conditions
	sweepAirMass     float64 // Inducted air mass in grams per cycle
	sweepCoolantTemp float64 // Coolant temperature in Celsius
	sweepMeasuredAFR float64 // O2 sensor AFR reading
)

// showCmd renders the calibration's target-AFR table.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the calibrated target-AFR table",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		m := loadController().FuelMap()

		grid := make([][]float64, m.LoadAxis().Len())
		for i := range grid {
			row := make([]float64, m.RPMAxis().Len())
			for j := range row {
				row[j] = m.Cell(i, j)
			}
			grid[i] = row
		}
		renderGrid("Target AFR", m.RPMAxis().Points(), m.LoadAxis().Points(), grid)
	},
}

// sweepCmd computes the pulse width at every breakpoint pair under fixed
// temperature, air-mass, and sensor conditions, and renders the result.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Render pulse widths across the whole operating range",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		controller := loadController()
		m := controller.FuelMap()

		grid := make([][]float64, m.LoadAxis().Len())
		for i := range grid {
			row := make([]float64, m.RPMAxis().Len())
			for j := range row {
				result, err := controller.ComputePulseWidth(fuel.EngineReading{
					RPM:          m.RPMAxis().At(j),
					Load:         m.LoadAxis().At(i),
					AirMass:      sweepAirMass,
					CoolantTempC: sweepCoolantTemp,
					MeasuredAFR:  sweepMeasuredAFR,
				})
				if err != nil {
					// Cell is unreachable under these conditions; render a gap
					row[j] = math.NaN()
					continue
				}
				row[j] = result.Milliseconds
			}
			grid[i] = row
		}
		title := fmt.Sprintf("Pulse Width (ms) | air=%.2fg coolant=%.1f°C measured=%.1f",
			sweepAirMass, sweepCoolantTemp, sweepMeasuredAFR)
		renderGrid(title, m.RPMAxis().Points(), m.LoadAxis().Points(), grid)
	},
}

// renderGrid draws a load-by-rpm value grid as a colored terminal box,
// rpm increasing left to right, load increasing top to bottom.
func renderGrid(title string, rpmAxis, loadAxis []int, grid [][]float64) {
	lo, hi := gridRange(grid)

	var b strings.Builder
	b.WriteString("   RPM → |")
	for _, r := range rpmAxis {
		b.WriteString(fmt.Sprintf("%7d", r))
	}
	b.WriteString("\n")
	b.WriteString(" kPa ↓   |" + strings.Repeat("-", len(rpmAxis)*7) + "\n")

	for i, l := range loadAxis {
		b.WriteString(fmt.Sprintf("  %4d   |", l))
		for _, v := range grid[i] {
			if math.IsNaN(v) {
				b.WriteString("     --")
				continue
			}
			b.WriteString(cellColor(v, lo, hi).Sprintf("%7.2f", v))
		}
		b.WriteString("\n")
	}

	pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Println(strings.TrimRight(b.String(), "\n"))
}

// gridRange scans the finite cells for the color scale's bounds.
func gridRange(grid [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range grid {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// cellColor maps a value to a color band within the grid's range.
func cellColor(value, lo, hi float64) pterm.Color {
	if hi == lo {
		return pterm.FgDefault
	}
	switch n := (value - lo) / (hi - lo); {
	case n < 0.25:
		return pterm.FgCyan
	case n < 0.5:
		return pterm.FgGreen
	case n < 0.75:
		return pterm.FgYellow
	default:
		return pterm.FgRed
	}
}

// init sets up the sweep flags
func init() {
	sweepCmd.Flags().Float64Var(&sweepAirMass, "air-mass", 0.45, "Inducted air mass in grams per cycle")
	sweepCmd.Flags().Float64Var(&sweepCoolantTemp, "coolant-temp", 90.0, "Coolant temperature in Celsius")
	sweepCmd.Flags().Float64Var(&sweepMeasuredAFR, "measured-afr", 14.7, "Measured AFR from the O2 sensor")
}
