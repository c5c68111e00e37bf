package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/groundwaterkit/pitflow/pkg/sweep"
)

// sweepProgressMsg reports completed grid points.
type sweepProgressMsg struct {
	done  int
	total int
}

// sweepDoneMsg carries the finished sweep results.
type sweepDoneMsg struct {
	points []sweep.Point
	err    error
}

// sweepModel is the bubbletea model showing sweep progress as a bar.
type sweepModel struct {
	dimension string
	done      int
	total     int
	points    []sweep.Point
	err       error
	cancel    context.CancelFunc
}

func newSweepModel(dimension string, total int, cancel context.CancelFunc) sweepModel {
	return sweepModel{dimension: dimension, total: total, cancel: cancel}
}

func (m sweepModel) Init() tea.Cmd {
	return nil
}

func (m sweepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancel()
			return m, nil
		}
	case sweepProgressMsg:
		m.done = msg.done
		m.total = msg.total
	case sweepDoneMsg:
		m.points = msg.points
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

const sweepBarWidth = 40

func (m sweepModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Sweeping %s", m.dimension)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q to cancel"))
	b.WriteString("\n\n")

	filled := 0
	if m.total > 0 {
		filled = m.done * sweepBarWidth / m.total
	}
	b.WriteString("  ")
	b.WriteString(styleBarFilled.Render(strings.Repeat("█", filled)))
	b.WriteString(styleBarEmpty.Render(strings.Repeat("░", sweepBarWidth-filled)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d/%d", m.done, m.total)))
	b.WriteString("\n")

	return b.String()
}

// runSweepTUI executes the sweep with an interactive progress bar on
// stderr. Pressing q cancels the sweep through the context.
func runSweepTUI(ctx context.Context, spec sweep.Spec) ([]sweep.Point, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		newSweepModel(string(spec.Dimension), spec.Steps, cancel),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)

	spec.OnPoint = func(done, total int) {
		p.Send(sweepProgressMsg{done: done, total: total})
	}

	go func() {
		points, err := sweep.Run(ctx, spec)
		p.Send(sweepDoneMsg{points: points, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		// The program exits with an error when its context is cancelled;
		// report the cancellation itself instead.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	m := final.(sweepModel)
	return m.points, m.err
}
