package config

// SettingsFile represents the structure of the optional config.yaml file.
type SettingsFile struct {
	Version  string `yaml:"version"`
	Root     string `yaml:"root"`
	LogLevel string `yaml:"logLevel"`
}
