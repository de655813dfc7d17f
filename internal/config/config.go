// Package config handles tool configuration loading and management.
package config

// Config holds all objview settings.
type Config struct {
	Models    ModelsConfig    `yaml:"models"`
	Transform TransformConfig `yaml:"transform"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ModelsConfig holds model file settings.
type ModelsConfig struct {
	Dir string `yaml:"dir"` // Directory searched for bare model names
}

// TransformConfig holds default step sizes for interactive transforms.
type TransformConfig struct {
	MoveStep      float64 `yaml:"move_step"`       // Translation per step
	RotateStepDeg float64 `yaml:"rotate_step_deg"` // Rotation per step, degrees
	ScaleFactor   float64 `yaml:"scale_factor"`    // Scale per step
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Models: ModelsConfig{
			Dir: ".",
		},
		Transform: TransformConfig{
			MoveStep:      0.1,
			RotateStepDeg: 15,
			ScaleFactor:   1.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
