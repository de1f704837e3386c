package bot

import (
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const (
	SCORE_WIN  = 1000
	SCORE_LOSS = -1000
)

// Evaluate scores the board from the computer's side. A finished line
// short-circuits to SCORE_WIN or SCORE_LOSS; otherwise every occupied
// cell adds its positional weight times the sum of its four line lengths.
// Both owners' pieces add to the score.
func Evaluate(board *domain.Board, computer, human domain.PlayerID) int {
	if board.HasWon(computer) {
		return SCORE_WIN
	} else if board.HasWon(human) {
		return SCORE_LOSS
	}

	score := 0
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			if board.Cell(row, col) == domain.Empty {
				continue
			}

			lines := 0
			for _, dir := range domain.Directions {
				lines += board.LineLength(row, col, dir)
			}
			score += PositionWeight(row, col) * lines
		}
	}

	return score
}

// PositionWeight is the fixed bonus for a 0-based cell
func PositionWeight(row, col int) int {
	return (3-row)*(3-col) + (row+1)*(col+1)
}
