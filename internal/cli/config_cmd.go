package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chime/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change display preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			clock := "12-hour"
			if settings.Use24HourClock {
				clock = "24-hour"
			}
			fmt.Printf("Clock display: %s\n", clock)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clock <12|24>",
		Short: "Set 12- or 24-hour clock display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var use24 bool
			switch args[0] {
			case "12":
				use24 = false
			case "24":
				use24 = true
			default:
				return fmt.Errorf("expected 12 or 24, got %q", args[0])
			}
			if err := app.Settings.Set(context.Background(), &domain.Settings{Use24HourClock: use24}); err != nil {
				return err
			}
			fmt.Printf("Clock display set to %s-hour.\n", args[0])
			return nil
		},
	})

	return cmd
}
