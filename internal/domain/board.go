package domain

import "fmt"

// Board is the 6x7 grid. Row 0 is the top row, columns are 1-indexed
// at the API and 0-indexed internally.
type Board struct {
	grid [Rows][Columns]PlayerID
}

func NewBoard() *Board {
	return &Board{}
}

// Cell returns the owner at a 0-based (row, col), Empty when out of bounds
func (b *Board) Cell(row, col int) PlayerID {
	if !inBounds(row, col) {
		return Empty
	}
	return b.grid[row][col]
}

// LegalColumns returns the columns whose top cell is still empty, ascending
func (b *Board) LegalColumns() []int {
	columns := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if b.grid[0][c] == Empty {
			columns = append(columns, c+1)
		}
	}
	return columns
}

// Apply drops a piece for owner into column (1..7)
func (b *Board) Apply(column int, owner PlayerID) error {
	if column < 1 || column > Columns {
		return ErrInvalidColumn
	}
	if !owner.Valid() {
		return ErrInvalidPlayer
	}

	// here grid[0] represents the top row (0 -> top and 5 -> bottom)
	col := column - 1
	if b.grid[0][col] != Empty {
		return ErrColumnFull
	}

	// the disk falls until it reaches the bottom or another disk
	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][col] == Empty {
			b.grid[row][col] = owner
			return nil
		}
	}
	return ErrColumnFull
}

// Undo takes back the topmost piece in column. It must only follow a
// successful Apply to the same column.
func (b *Board) Undo(column int) {
	if column < 1 || column > Columns {
		panic(fmt.Sprintf("domain: undo on invalid column %d", column))
	}
	col := column - 1
	for row := 0; row < Rows; row++ {
		if b.grid[row][col] != Empty {
			b.grid[row][col] = Empty
			return
		}
	}
	panic(fmt.Sprintf("domain: undo on empty column %d", column))
}

func (b *Board) IsFull() bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.grid[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// this creates a copy of the board
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}
