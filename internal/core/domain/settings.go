package domain

// Settings holds the resolved configuration of the tool.
type Settings struct {
	// Root is the managed directory holding the registries.
	Root string

	// LogLevel is the minimum log level ("debug", "info", "warn" or "error").
	LogLevel string
}

// Merge returns s with every non-empty field of override applied.
func (s Settings) Merge(override Settings) Settings {
	if override.Root != "" {
		s.Root = override.Root
	}
	if override.LogLevel != "" {
		s.LogLevel = override.LogLevel
	}
	return s
}
