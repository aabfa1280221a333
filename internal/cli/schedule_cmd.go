package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/chime/internal/cli/formatter"
	"github.com/alexanderramin/chime/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage saved schedules",
	}
	cmd.AddCommand(
		newScheduleAddCmd(app),
		newScheduleListCmd(app),
		newScheduleShowCmd(app),
		newScheduleDeleteCmd(app),
	)
	return cmd
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var (
		days       string
		periods    int
		zeroPeriod bool
		breakSpan  string
		lunchSpan  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a schedule with auto-generated default periods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sched := &domain.Schedule{
				Name:         args[0],
				SelectedDays: splitDays(days),
				Periods:      domain.GenerateDefaultPeriods(periods, zeroPeriod),
			}

			var err error
			if breakSpan != "" {
				sched.HasBreak = true
				sched.BreakStartTime, sched.BreakEndTime, err = splitSpan(breakSpan)
				if err != nil {
					return fmt.Errorf("--break: %w", err)
				}
			}
			if lunchSpan != "" {
				sched.HasLunch = true
				sched.LunchStartTime, sched.LunchEndTime, err = splitSpan(lunchSpan)
				if err != nil {
					return fmt.Errorf("--lunch: %w", err)
				}
			}

			if err := app.Schedules.Create(context.Background(), sched); err != nil {
				return err
			}
			fmt.Printf("Created schedule %q with %d periods.\n", sched.Name, len(sched.Periods))
			return nil
		},
	}

	cmd.Flags().StringVar(&days, "days", "Mon,Tue,Wed,Thu,Fri", "Comma-separated day tokens (Mon..Sun)")
	cmd.Flags().IntVar(&periods, "periods", 6, "Number of default periods to generate")
	cmd.Flags().BoolVar(&zeroPeriod, "zero-period", false, "Label the first period \"Zero Period\"")
	cmd.Flags().StringVar(&breakSpan, "break", "", "Break window, e.g. \"10:10 AM-10:25 AM\"")
	cmd.Flags().StringVar(&lunchSpan, "lunch", "", "Lunch window, e.g. \"12:00 PM-12:30 PM\"")

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedules, err := app.Schedules.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatScheduleList(schedules))
			return nil
		},
	}
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one schedule's blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sched, err := app.Schedules.GetByName(ctx, args[0])
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSchedule(sched, settings.Use24HourClock))
			return nil
		},
	}
}

func newScheduleDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sched, err := app.Schedules.GetByName(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Schedules.Delete(ctx, sched.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted schedule %q.\n", sched.Name)
			return nil
		},
	}
}

func splitDays(s string) []string {
	var days []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			days = append(days, d)
		}
	}
	return days
}

// splitSpan splits "8:00 AM-8:50 AM" into start and end clock strings.
func splitSpan(s string) (start, end string, err error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return "", "", fmt.Errorf("expected \"h:mm AM-h:mm PM\", got %q", s)
	}
	return strings.TrimSpace(start), strings.TrimSpace(end), nil
}
