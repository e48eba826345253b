// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/latticeui/lattice/widget"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const iconSuccess = "✓"

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// boundsTable renders the widgets below root, one row each, with
// their bounds relative to root.
func boundsTable(root *widget.Panel) (string, error) {
	var rows [][]string
	err := widget.Walk(root, func(n widget.Node) error {
		name := n.Name
		if name == "" {
			name = "·"
		}
		r := n.Bounds
		rows = append(rows, []string{
			strings.Repeat("  ", n.Depth) + name,
			n.Kind.String(),
			strconv.Itoa(r.Min.X),
			strconv.Itoa(r.Min.Y),
			strconv.Itoa(r.Dx()),
			strconv.Itoa(r.Dy()),
		})
		return nil
	})
	if err != nil {
		return "", err
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Widget", "Kind", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col >= 2:
				return StyleNumber
			case col == 1:
				return StyleDim
			}
			return lipgloss.NewStyle()
		})
	return t.Render(), nil
}
