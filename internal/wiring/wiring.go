// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pak/internal/adapters/cas"
	_ "go.trai.ch/pak/internal/adapters/config"
	_ "go.trai.ch/pak/internal/adapters/filters"
	_ "go.trai.ch/pak/internal/adapters/fs"
	_ "go.trai.ch/pak/internal/adapters/logger"
	_ "go.trai.ch/pak/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/pak/internal/app"
	_ "go.trai.ch/pak/internal/engine/packer"
	_ "go.trai.ch/pak/internal/engine/scheduler"
)
