package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Directory Directory       `mapstructure:"DIRECTORY" json:"directory" yaml:"directory"`
	Session   Session         `mapstructure:"SESSION" json:"session" yaml:"session"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
