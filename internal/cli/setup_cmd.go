package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/chime/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create a schedule interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("setup requires an interactive terminal; use `chime schedule add` instead")
			}
			return runSetupWizard(app)
		},
	}
}

func runSetupWizard(app *App) error {
	var (
		name        string
		days        []string
		periodCount = "6"
		zeroPeriod  bool
		hasBreak    bool
		breakStart  = "10:10 AM"
		breakEnd    = "10:25 AM"
		hasLunch    bool
		lunchStart  = "12:00 PM"
		lunchEnd    = "12:30 PM"
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schedule name").
				Placeholder("Regular Day").
				Value(&name).
				Validate(validateNonEmpty),
			huh.NewMultiSelect[string]().
				Title("School days").
				Options(
					huh.NewOption("Monday", "Mon").Selected(true),
					huh.NewOption("Tuesday", "Tue").Selected(true),
					huh.NewOption("Wednesday", "Wed").Selected(true),
					huh.NewOption("Thursday", "Thu").Selected(true),
					huh.NewOption("Friday", "Fri").Selected(true),
					huh.NewOption("Saturday", "Sat"),
					huh.NewOption("Sunday", "Sun"),
				).
				Value(&days).
				Validate(validateDaySelection),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Number of periods").
				Placeholder("6").
				Value(&periodCount).
				Validate(validatePositiveInt),
			huh.NewConfirm().
				Title("Include a Zero Period?").
				Value(&zeroPeriod),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Does this schedule have a break?").
				Value(&hasBreak),
			huh.NewInput().
				Title("Break start (h:mm AM/PM)").
				Value(&breakStart).
				Validate(validateClock),
			huh.NewInput().
				Title("Break end (h:mm AM/PM)").
				Value(&breakEnd).
				Validate(validateClock),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Does this schedule have lunch?").
				Value(&hasLunch),
			huh.NewInput().
				Title("Lunch start (h:mm AM/PM)").
				Value(&lunchStart).
				Validate(validateClock),
			huh.NewInput().
				Title("Lunch end (h:mm AM/PM)").
				Value(&lunchEnd).
				Validate(validateClock),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	total, err := strconv.Atoi(strings.TrimSpace(periodCount))
	if err != nil {
		return fmt.Errorf("invalid period count %q", periodCount)
	}

	sched := &domain.Schedule{
		Name:         name,
		SelectedDays: days,
		Periods:      domain.GenerateDefaultPeriods(total, zeroPeriod),
	}
	if hasBreak {
		sched.HasBreak = true
		sched.BreakStartTime = breakStart
		sched.BreakEndTime = breakEnd
	}
	if hasLunch {
		sched.HasLunch = true
		sched.LunchStartTime = lunchStart
		sched.LunchEndTime = lunchEnd
	}

	if err := app.Schedules.Create(context.Background(), sched); err != nil {
		return err
	}
	fmt.Printf("Created schedule %q. Run `chime watch` to start the countdown.\n", sched.Name)
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDaySelection(days []string) error {
	if len(days) == 0 {
		return fmt.Errorf("pick at least one day")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateClock(s string) error {
	if _, _, err := domain.ParseClock(s); err != nil {
		return fmt.Errorf("use h:mm AM or h:mm PM")
	}
	return nil
}
