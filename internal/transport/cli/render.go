package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// RenderBoard writes the grid with column numbers on top and row numbers
// on the left, one cell per slot between bars.
func RenderBoard(w io.Writer, b *domain.Board) {
	var sb strings.Builder

	sb.WriteString(" _")
	for col := 1; col <= domain.Columns; col++ {
		fmt.Fprintf(&sb, "|%d", col)
	}
	sb.WriteString("|\n")

	for row := 0; row < domain.Rows; row++ {
		fmt.Fprintf(&sb, "|%d", row+1)
		for col := 0; col < domain.Columns; col++ {
			fmt.Fprintf(&sb, "|%c", b.Cell(row, col).Symbol())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("---------------\n")

	_, _ = io.WriteString(w, sb.String())
}
