package player

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agnanachandran/connect-four/internal/domain"
)

// ColumnPrompter asks the person at the keyboard for a column and hands
// back the raw input line. It errors only when the input stream itself
// fails; validation happens on this side of the boundary.
type ColumnPrompter interface {
	PromptColumn(name string) (string, error)
}

// Human converts typed 1-based column numbers into moves. Junk input,
// out-of-range numbers, and full columns are explained on Feedback and
// re-prompted; the only way out with an error is a dead input stream.
type Human struct {
	Prompter ColumnPrompter
	Feedback io.Writer
}

func (h *Human) SelectColumn(b domain.Board, self, opponent domain.Piece) (int, error) {
	for {
		raw, err := h.Prompter.PromptColumn(self.String())
		if err != nil {
			return -1, err
		}

		input := strings.TrimSpace(raw)
		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(h.Feedback, "%q is not a column number\n", input)
			continue
		}

		// players count columns from 1
		col := n - 1
		if col < 0 || col >= domain.Columns {
			fmt.Fprintf(h.Feedback, "column %d is out of range, pick 1 to %d\n", n, domain.Columns)
			continue
		}
		if !b.CanPlay(col) {
			fmt.Fprintf(h.Feedback, "column %d is full\n", n)
			continue
		}

		return col, nil
	}
}
