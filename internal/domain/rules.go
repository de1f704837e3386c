package domain

// Direction is one of the four axes a line can run along
type Direction int

const (
	Horizontal   Direction = iota
	Vertical               // top to bottom
	Diagonal               // top-left to bottom-right
	AntiDiagonal           // top-right to bottom-left
)

// Directions lists every axis checked for a line
var Directions = []Direction{Horizontal, Vertical, Diagonal, AntiDiagonal}

func (d Direction) delta() (int, int) {
	switch d {
	case Horizontal:
		return 0, 1
	case Vertical:
		return 1, 0
	case Diagonal:
		return 1, 1
	default:
		return 1, -1
	}
}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	default:
		return "anti-diagonal"
	}
}

// LineLength counts the run of same-owner pieces through (row, col) along
// dir, the cell itself included. Empty cells have no line and return 0.
func (b *Board) LineLength(row, col int, dir Direction) int {
	player := b.Cell(row, col)
	if player == Empty {
		return 0
	}
	dRow, dCol := dir.delta()
	return 1 + b.countDiskInDirection(row, col, dRow, dCol, player) +
		b.countDiskInDirection(row, col, -dRow, -dCol, player)
}

// HasWon reports whether owner has ToWin or more pieces in a line anywhere
func (b *Board) HasWon(owner PlayerID) bool {
	if owner == Empty {
		return false
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.grid[row][col] != owner {
				continue
			}
			for _, dir := range Directions {
				if b.LineLength(row, col, dir) >= ToWin {
					return true
				}
			}
		}
	}
	return false
}

// this counts the number of disks in a specific direction, not including the start
func (b *Board) countDiskInDirection(row, col, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for inBounds(r, c) && b.grid[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
