// Package render draws boards for the terminal: a box-drawing grid with
// quadrant borders, plus candidate and influencer listings for vacant
// cells.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ms1963/SudokuSolverAndGenerator/internal/board"
)

var (
	digitStyle  = lipgloss.NewStyle().Bold(true)
	vacantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("66"))
)

// Grid renders the occupancy view. Light lines separate cells, double
// lines separate quadrants. Vacant cells show a dot.
func Grid(b *board.Board) string {
	dim := b.Dim()
	size := b.Size()
	w := 1
	if size > 9 {
		w = 2
	}
	seg := strings.Repeat("═", w+2)
	light := strings.Repeat("─", w+2)

	var sb strings.Builder
	sb.WriteString(frameStyle.Render(border(dim, seg, "╔", "╤", "╦", "╗")))
	sb.WriteByte('\n')
	for row := 1; row <= size; row++ {
		sb.WriteString(renderRow(b, row, w))
		sb.WriteByte('\n')
		switch {
		case row == size:
			sb.WriteString(frameStyle.Render(border(dim, seg, "╚", "╧", "╩", "╝")))
		case row%dim == 0:
			sb.WriteString(frameStyle.Render(border(dim, seg, "╠", "╪", "╬", "╣")))
		default:
			sb.WriteString(frameStyle.Render(border(dim, light, "╟", "┼", "╫", "╢")))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// border builds one horizontal frame line. inner joins cells inside a
// quadrant, major joins quadrants.
func border(dim int, seg, left, inner, major, right string) string {
	size := dim * dim
	var sb strings.Builder
	sb.WriteString(left)
	for col := 1; col <= size; col++ {
		sb.WriteString(seg)
		switch {
		case col == size:
			sb.WriteString(right)
		case col%dim == 0:
			sb.WriteString(major)
		default:
			sb.WriteString(inner)
		}
	}
	return sb.String()
}

func renderRow(b *board.Board, row, w int) string {
	dim := b.Dim()
	size := b.Size()
	var sb strings.Builder
	sb.WriteString(frameStyle.Render("║"))
	for col := 1; col <= size; col++ {
		var cell string
		if v := b.Occupant(row, col); v > 0 {
			cell = digitStyle.Render(fmt.Sprintf("%*d", w, v))
		} else {
			cell = vacantStyle.Render(strings.Repeat("·", w))
		}
		sb.WriteString(" " + cell + " ")
		if col%dim == 0 {
			sb.WriteString(frameStyle.Render("║"))
		} else {
			sb.WriteString(frameStyle.Render("│"))
		}
	}
	return sb.String()
}

// Candidates lists the candidate digits of every vacant cell, one line
// per cell in row-major order.
func Candidates(b *board.Board) string {
	return listVacant(b, func(row, col int) board.DigitSet {
		return b.Candidates(row, col)
	})
}

// Influencers lists the influencer digits of every vacant cell.
func Influencers(b *board.Board) string {
	return listVacant(b, func(row, col int) board.DigitSet {
		return b.Influencers(row, col)
	})
}

func listVacant(b *board.Board, pick func(row, col int) board.DigitSet) string {
	var sb strings.Builder
	for _, cell := range b.Vacancies() {
		set := pick(cell.Row, cell.Col)
		fmt.Fprintf(&sb, "(%d,%d): %s\n", cell.Row, cell.Col, set.String())
	}
	return sb.String()
}
