package model

import "fmt"

// ScanSettings holds the optimizer configuration. It is an immutable value
// passed explicitly into the scanner; the engine never reads ambient state.
type ScanSettings struct {
	MachineWidth float64 `json:"machine_width"` // implement operating width, same linear unit as coordinates
	AngleStep    float64 `json:"angle_step"`    // candidate-heading resolution in degrees
	Workers      int     `json:"workers"`       // concurrent field scans in batch mode; 0 = NumCPU
}

// DefaultScanSettings returns the stock configuration: a 48-unit machine
// width scanned at half-degree resolution.
func DefaultScanSettings() ScanSettings {
	return ScanSettings{
		MachineWidth: 48,
		AngleStep:    0.5,
		Workers:      0,
	}
}

// Validate checks the parameter invariants. All violations wrap
// ErrInvalidParameter so callers can test with errors.Is.
func (s ScanSettings) Validate() error {
	if s.MachineWidth <= 0 {
		return fmt.Errorf("machine width must be positive, got %g: %w", s.MachineWidth, ErrInvalidParameter)
	}
	if s.AngleStep <= 0 {
		return fmt.Errorf("angle step must be positive, got %g: %w", s.AngleStep, ErrInvalidParameter)
	}
	if s.AngleStep >= 180 {
		return fmt.Errorf("angle step must be below 180 degrees, got %g: %w", s.AngleStep, ErrInvalidParameter)
	}
	return nil
}
