// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xrepo/internal/adapters/config"
	_ "go.trai.ch/xrepo/internal/adapters/logger"
	_ "go.trai.ch/xrepo/internal/adapters/nuget"
	// Register app and engine nodes.
	_ "go.trai.ch/xrepo/internal/app"
	_ "go.trai.ch/xrepo/internal/engine/registry"
)
