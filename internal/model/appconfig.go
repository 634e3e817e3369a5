package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default scan settings applied to new runs
	DefaultMachineWidth float64 `json:"default_machine_width"`
	DefaultAngleStep    float64 `json:"default_angle_step"`
	DefaultWorkers      int     `json:"default_workers"`

	// Application preferences
	RecentFiles []string `json:"recent_files"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultScanSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultScanSettings()
	return AppConfig{
		DefaultMachineWidth: defaults.MachineWidth,
		DefaultAngleStep:    defaults.AngleStep,
		DefaultWorkers:      defaults.Workers,
		RecentFiles:         []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// ScanSettings struct. This is used when starting a new run so it inherits
// the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *ScanSettings) {
	s.MachineWidth = c.DefaultMachineWidth
	s.AngleStep = c.DefaultAngleStep
	s.Workers = c.DefaultWorkers
}
