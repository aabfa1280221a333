package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chime/internal/cli/formatter"
	"github.com/alexanderramin/chime/internal/contract"
	"github.com/alexanderramin/chime/internal/resolver"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live per-second countdown for the current block",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch requires an interactive terminal; use `chime now` instead")
			}
			p := tea.NewProgram(newWatchModel(app))
			_, err := p.Run()
			return err
		},
	}
}

type watchTickMsg time.Time

// watchTick schedules the next refresh at the upcoming wall-clock second
// boundary, so the countdown does not drift visibly.
func watchTick() tea.Cmd {
	next := time.Now().Truncate(time.Second).Add(time.Second)
	return tea.Tick(time.Until(next), func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

type watchModel struct {
	app      *App
	resp     *contract.StatusResponse
	err      error
	progress progress.Model
}

func newWatchModel(app *App) watchModel {
	bar := progress.New(progress.WithDefaultGradient())
	return watchModel{app: app, progress: bar}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.refresh, watchTick())
}

// refresh re-resolves the current moment. Each tick is one stateless
// service call; there is nothing to cancel besides the tick loop itself.
func (m watchModel) refresh() tea.Msg {
	resp, err := m.app.Status.GetStatus(context.Background(), contract.StatusRequest{})
	if err != nil {
		return err
	}
	return resp
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.progress.Width = width
		}
	case watchTickMsg:
		return m, tea.Batch(m.refresh, watchTick())
	case *contract.StatusResponse:
		m.resp = msg
		m.err = nil
	case error:
		m.err = msg
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	if m.resp == nil {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatStatus(m.resp))

	if m.resp.Kind == resolver.InBlock {
		total := m.resp.BlockEnd.Sub(m.resp.BlockStart)
		if total > 0 {
			elapsed := m.resp.Now.Sub(m.resp.BlockStart)
			b.WriteString("\n" + m.progress.ViewAs(float64(elapsed)/float64(total)) + "\n")
		}
	}

	b.WriteString("\n" + formatter.Dim("q to quit") + "\n")
	return b.String()
}
