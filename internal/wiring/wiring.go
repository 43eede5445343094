// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rauri/internal/adapters/artifact"
	_ "go.trai.ch/rauri/internal/adapters/aur"
	_ "go.trai.ch/rauri/internal/adapters/config"
	_ "go.trai.ch/rauri/internal/adapters/git"
	_ "go.trai.ch/rauri/internal/adapters/logger"
	_ "go.trai.ch/rauri/internal/adapters/makepkg"
	_ "go.trai.ch/rauri/internal/adapters/matcher"
	_ "go.trai.ch/rauri/internal/adapters/pacman"
	_ "go.trai.ch/rauri/internal/adapters/shell"
	_ "go.trai.ch/rauri/internal/adapters/telemetry"
	_ "go.trai.ch/rauri/internal/adapters/tracking"
	// Register app and engine nodes.
	_ "go.trai.ch/rauri/internal/app"
	_ "go.trai.ch/rauri/internal/engine/reconciler"
	_ "go.trai.ch/rauri/internal/engine/version"
)
