package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/stoplight/internal/cmd"
	"github.com/renato0307/stoplight/internal/config"
	"github.com/renato0307/stoplight/internal/ui"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Tagline is the application's tagline used in help text and documentation
const Tagline = "Green means go, red means stop"

func versionInfo() string {
	return fmt.Sprintf("stoplight %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Tagline:   Tagline,
		Version:   Version,
	})

	// Load settings from ~/.stoplight/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("stoplight"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err = ctx.Run()
	cli.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
