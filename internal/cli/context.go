// Package cli provides the command-line interface for the harvester.
package cli

import "github.com/shelfwatch/harvest/internal/app"

// globalApp is the application shared by all commands for one invocation.
// It is set by the root command's PersistentPreRunE and cleared on shutdown.
var globalApp *app.Application

// SetApp stores the application for command handlers.
func SetApp(a *app.Application) {
	globalApp = a
}

// GetApp returns the application initialized by the root command, or nil
// when initialization has not run.
func GetApp() *app.Application {
	return globalApp
}
