package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Harel23432/FuelMap/fuel"
)

// CalibrationFile is the YAML schema for a tune file.
type CalibrationFile struct {
	Version            string      `yaml:"version"`
	RPMAxis            []int       `yaml:"rpm_axis"`
	LoadAxis           []int       `yaml:"load_axis"`
	AFRTable           [][]float64 `yaml:"afr_table"`
	InjectorFlowGPerMs float64     `yaml:"injector_flow_g_per_ms"`
}

// LoadCalibration reads a YAML tune file. Rows of afr_table correspond to
// load breakpoints, low to high, and every row must span the rpm axis.
// Unknown fields are errors so typos in tune files fail loudly.
func LoadCalibration(path string) (fuel.Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fuel.Calibration{}, fmt.Errorf("reading calibration: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var file CalibrationFile
	if err := decoder.Decode(&file); err != nil {
		return fuel.Calibration{}, fmt.Errorf("parsing calibration: %w", err)
	}

	if len(file.AFRTable) != len(file.LoadAxis) {
		return fuel.Calibration{}, fmt.Errorf("calibration has %d afr_table rows for %d load breakpoints",
			len(file.AFRTable), len(file.LoadAxis))
	}
	flat := make([]float64, 0, len(file.LoadAxis)*len(file.RPMAxis))
	for i, row := range file.AFRTable {
		if len(row) != len(file.RPMAxis) {
			return fuel.Calibration{}, fmt.Errorf("calibration afr_table row %d has %d values for %d rpm breakpoints",
				i, len(row), len(file.RPMAxis))
		}
		flat = append(flat, row...)
	}

	return fuel.Calibration{
		RPMAxis:            file.RPMAxis,
		LoadAxis:           file.LoadAxis,
		AFRTable:           flat,
		InjectorFlowGPerMs: file.InjectorFlowGPerMs,
	}, nil
}

// resolveCalibration returns the tune from --calibration, or the stock tune
// when the flag is unset.
func resolveCalibration() (fuel.Calibration, error) {
	if calibrationPath == "" {
		logrus.Debug("no calibration file given, using stock tune")
		return fuel.DefaultCalibration(), nil
	}
	logrus.Infof("loading calibration from %s", calibrationPath)
	return LoadCalibration(calibrationPath)
}
