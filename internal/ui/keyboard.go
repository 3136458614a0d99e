package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/interaction"
	"github.com/hyprhelp/hyprhelp/internal/theme"
)

const (
	cellGap      = 1
	cellHeight   = 3
	cellPadding  = 2
	minCellWidth = 5
)

// cellRect is the screen area of one key, relative to the grid origin
type cellRect struct {
	height int
	key    domain.Symbol
	width  int
	x      int
	y      int
}

func (c cellRect) contains(x, y int) bool {
	return x >= c.x && x < c.x+c.width && y >= c.y && y < c.y+c.height
}

// keyboard lays out the key grid once and answers hit tests against it
type keyboard struct {
	cells  []cellRect
	layout interaction.Layout
}

func newKeyboard(layout interaction.Layout) keyboard {
	var cells []cellRect
	for r, row := range layout.Rows {
		x := 0
		y := r * cellHeight
		for _, k := range row {
			w := cellWidth(k)
			cells = append(cells, cellRect{height: cellHeight, key: k, width: w, x: x, y: y})
			x += w + cellGap
		}
	}
	return keyboard{cells: cells, layout: layout}
}

func cellWidth(k domain.Symbol) int {
	w := lipgloss.Width(k.String()) + cellPadding
	if w < minCellWidth {
		return minCellWidth
	}
	return w
}

// keyAt returns the key under grid-relative coordinates
func (kb keyboard) keyAt(x, y int) (domain.Symbol, bool) {
	for _, c := range kb.cells {
		if c.contains(x, y) {
			return c.key, true
		}
	}
	return "", false
}

// cell returns the rectangle of key k
func (kb keyboard) cell(k domain.Symbol) (cellRect, bool) {
	for _, c := range kb.cells {
		if c.key == k {
			return c, true
		}
	}
	return cellRect{}, false
}

// render draws every row using the per-key display values of view
func (kb keyboard) render(view interaction.View, styles theme.Styles) string {
	gap := lipgloss.NewStyle().Width(cellGap).Height(cellHeight).Render("")

	rows := make([]string, 0, len(kb.layout.Rows))
	for _, row := range kb.layout.Rows {
		cells := make([]string, 0, len(row)*2)
		for i, k := range row {
			d := view.Keys[k]
			if i > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, styles.KeyCell(cellWidth(k), cellHeight, d.Foreground, d.Background).Render(d.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
