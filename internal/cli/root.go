package cli

import (
	"github.com/alexanderramin/chime/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedules service.ScheduleService
	Status    service.StatusService
	Settings  service.SettingsService

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands (setup, watch) refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "chime" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chime",
		Short: "Class schedule tracker and period countdown",
	}

	root.AddCommand(
		newSetupCmd(app),
		newScheduleCmd(app),
		newNowCmd(app),
		newWatchCmd(app),
		newConfigCmd(app),
	)

	return root
}
