package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/renato0307/stoplight/internal/config"
	"github.com/renato0307/stoplight/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start the stoplight TUI (default)" default:"1"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the stoplight TUI over SSH"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings and preferences (meta, show, set)"`
	Keys      KeysCmd      `cmd:"keys" help:"Manage signal hotkeys (list, set)"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play a signal cue (cross-platform)" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		c.settings = settings
	}

	c.applySettings()

	if err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// SSH sessions and helper processes inherit the same debug settings
	if c.Debug {
		os.Setenv(logging.EnvDebug, "1")
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, strconv.Itoa(c.MaxLogFiles))
	}

	// GORM's logger writes through logging.Logger, so the container comes last
	container, err := NewContainer(config.GetDBPath())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills flags still at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
			c.Debug = true
		}
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
