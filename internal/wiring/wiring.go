// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/taskid/internal/adapters/config"
	_ "go.trai.ch/taskid/internal/adapters/hasher"
	_ "go.trai.ch/taskid/internal/adapters/logger"
	_ "go.trai.ch/taskid/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/taskid/internal/app"
)
