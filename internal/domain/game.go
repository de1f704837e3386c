package domain

// Outcome is derived from the board on demand and never stored
type Outcome struct {
	Status GameStatus
	Winner PlayerID
}

func (o Outcome) IsFinished() bool {
	return o.Status == StatusWon || o.Status == StatusDraw
}

// OutcomeOf checks every owner for a win, then fullness for a draw
func OutcomeOf(b *Board) Outcome {
	for _, owner := range Owners {
		if b.HasWon(owner) {
			return Outcome{Status: StatusWon, Winner: owner}
		}
	}
	if b.IsFull() {
		return Outcome{Status: StatusDraw, Winner: Empty}
	}
	return Outcome{Status: StatusActive, Winner: Empty}
}
