package ports

import "go.trai.ch/xrepo/internal/core/domain"

// SettingsLoader resolves the tool settings from the config file and environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load returns the settings with defaults, the config file, the environment
	// and finally the non-empty fields of overrides applied.
	Load(overrides domain.Settings) (domain.Settings, error)
}
