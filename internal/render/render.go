package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/agnanachandran/connect-four/internal/domain"
)

// Renderer prints the board as a text grid, columns numbered 1-7 the way
// the prompt asks for them. Color is optional so piped or captured output
// stays plain.
type Renderer struct {
	out    io.Writer
	red    func(a ...interface{}) string
	yellow func(a ...interface{}) string
}

func New(out io.Writer, useColor bool) *Renderer {
	r := &Renderer{out: out, red: fmt.Sprint, yellow: fmt.Sprint}
	if useColor {
		r.red = color.New(color.FgRed, color.Bold).SprintFunc()
		r.yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return r
}

func (r *Renderer) Render(b domain.Board) {
	var sb strings.Builder

	for col := 1; col <= domain.Columns; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			sb.WriteByte(' ')
			sb.WriteString(r.cell(b[row][col]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	fmt.Fprint(r.out, sb.String())
}

// ResultMessage spells out a finished game for the final print.
func (r *Renderer) ResultMessage(res domain.Result) string {
	switch res.Status {
	case domain.StatusWon:
		return r.pieceLabel(res.Winner) + " wins!"
	case domain.StatusDraw:
		return "It's a draw."
	}
	return "Game in progress."
}

func (r *Renderer) cell(p domain.Piece) string {
	switch p {
	case domain.Red:
		return r.red("R")
	case domain.Yellow:
		return r.yellow("Y")
	}
	return "."
}

func (r *Renderer) pieceLabel(p domain.Piece) string {
	switch p {
	case domain.Red:
		return r.red("Red")
	case domain.Yellow:
		return r.yellow("Yellow")
	}
	return "Nobody"
}
