package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new nesting runs
	DefaultXLimit   float64   `json:"default_x_limit"`
	DefaultYLimit   float64   `json:"default_y_limit"`
	DefaultAngles   []float64 `json:"default_angles"`
	DefaultGridStep float64   `json:"default_grid_step"`

	// Laser GCode defaults
	DefaultLaserProfile string  `json:"default_laser_profile"`
	DefaultFeedRate     float64 `json:"default_feed_rate"`
	DefaultLaserPower   int     `json:"default_laser_power"`

	// Application preferences
	RecentInputs []string `json:"recent_inputs"`
}

// DefaultAppConfig returns an AppConfig populated with the same values
// as DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultXLimit:       defaults.XLimit,
		DefaultYLimit:       defaults.YLimit,
		DefaultAngles:       append([]float64(nil), defaults.Angles...),
		DefaultGridStep:     defaults.GridStep,
		DefaultLaserProfile: "Generic",
		DefaultFeedRate:     1200.0,
		DefaultLaserPower:   800,
		RecentInputs:        []string{},
	}
}

// ApplyToSettings copies the saved defaults into a NestSettings struct,
// used when starting a run without explicit configuration.
func (c AppConfig) ApplyToSettings(s *NestSettings) {
	s.XLimit = c.DefaultXLimit
	s.YLimit = c.DefaultYLimit
	if len(c.DefaultAngles) > 0 {
		s.Angles = append([]float64(nil), c.DefaultAngles...)
	}
	s.GridStep = c.DefaultGridStep
}
