package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cartSyncOutcome reports the server round trip back to the model.
type cartSyncOutcome struct {
	err     error
	elapsed time.Duration
}

type cartSyncModel struct {
	spinner spinner.Model
	label   string
	run     tea.Cmd
	outcome *cartSyncOutcome

	okStyle   lipgloss.Style
	failStyle lipgloss.Style
	dimStyle  lipgloss.Style
}

func newCartSyncModel(label string, run tea.Cmd) cartSyncModel {
	return cartSyncModel{
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		label:     label,
		run:       run,
		okStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		dimStyle:  lipgloss.NewStyle().Faint(true),
	}
}

func (m cartSyncModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m cartSyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cartSyncOutcome:
		m.outcome = &msg
		return m, tea.Quit
	case spinner.TickMsg:
		if m.outcome != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// View shows the spinner while the sync is in flight and leaves a
// one-line status behind once it settles.
func (m cartSyncModel) View() string {
	if m.outcome == nil {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	elapsed := m.dimStyle.Render(m.outcome.elapsed.Round(time.Millisecond).String())
	if m.outcome.err != nil {
		return fmt.Sprintf("%s %s %s\n", m.failStyle.Render("✗"), m.label, elapsed)
	}
	return fmt.Sprintf("%s %s %s\n", m.okStyle.Render("✓"), m.label, elapsed)
}

func runCartSyncSpinner(ctx context.Context, output io.Writer, label string, sync func(context.Context) error) error {
	started := time.Now()
	run := func() tea.Msg {
		return cartSyncOutcome{err: sync(ctx), elapsed: time.Since(started)}
	}

	program := tea.NewProgram(
		newCartSyncModel(label, run),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	final, ok := finalModel.(cartSyncModel)
	if !ok {
		return fmt.Errorf("unexpected final sync model type %T", finalModel)
	}
	if final.outcome == nil {
		// Killed before the sync reported, e.g. context cancellation.
		return ctx.Err()
	}

	return final.outcome.err
}
