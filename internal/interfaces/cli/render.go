package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Estilos compartidos de la salida de la terminal.
var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	styleMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleTotal  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	styleError  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	styleBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// renderTable tabla simple de ancho fijo: cabecera estilizada + filas.
func renderTable(headers []string, widths []int, rows [][]string) string {
	var b strings.Builder

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = pad(h, widths[i])
	}
	b.WriteString(styleHeader.Render(strings.Join(cells, "  ")))
	b.WriteByte('\n')

	for _, r := range rows {
		for i, c := range r {
			cells[i] = pad(c, widths[i])
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteByte('\n')
	}
	return b.String()
}

// pad recorta o rellena a un ancho fijo (runas, no bytes).
func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
