// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/turbo/internal/adapters/config"
	_ "go.trai.ch/turbo/internal/adapters/fs"
	_ "go.trai.ch/turbo/internal/adapters/logger"
	_ "go.trai.ch/turbo/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/turbo/internal/app"
)
