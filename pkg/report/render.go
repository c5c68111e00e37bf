package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleSection = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	styleBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleHeader  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
)

// Text renders the report as a styled terminal table.
func (r *Report) Text() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(r.Title))
	b.WriteString("\n\n")

	b.WriteString(styleSection.Render("Inputs"))
	b.WriteString("\n")
	b.WriteString(renderRows(r.Inputs))
	b.WriteString("\n")

	b.WriteString(styleSection.Render("Outputs"))
	b.WriteString("\n")
	b.WriteString(renderRows(r.Outputs))
	b.WriteString("\n")
	return b.String()
}

func renderRows(rows []Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers("Quantity", "Value", "Unit")

	for _, row := range rows {
		t.Row(row.Label, FormatValue(row.Value), row.Unit)
	}
	return t.Render()
}

// FormatValue renders a numeric value compactly: plain decimal notation
// for field-scale magnitudes, scientific notation for the very small
// rates (recharge, conductivity, inflow) the model works with.
func FormatValue(v float64) string {
	av := v
	if av < 0 {
		av = -av
	}
	if av != 0 && (av < 1e-3 || av >= 1e7) {
		return fmt.Sprintf("%.4e", v)
	}
	return fmt.Sprintf("%.4f", v)
}
