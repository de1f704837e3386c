package domain

// PlayerID tags the owner of a cell. Empty means no piece.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
	Human   PlayerID = 3
	AI      PlayerID = 4
)

// Owners lists every tag that can hold a piece, in the order outcomes are checked.
var Owners = []PlayerID{Player1, Player2, Human, AI}

// Valid reports whether p can own a piece on the board
func (p PlayerID) Valid() bool {
	return p >= Player1 && p <= AI
}

// Symbol is the single character drawn in a board cell
func (p PlayerID) Symbol() rune {
	switch p {
	case Player1:
		return '1'
	case Player2:
		return '2'
	case Human:
		return 'H'
	case AI:
		return 'A'
	default:
		return ' '
	}
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	case Human:
		return "Human player"
	case AI:
		return "AI opponent"
	default:
		return "empty"
	}
}

// for board representation
const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Move is a column (1-indexed) dropped by an owner
type Move struct {
	Column int
	Owner  PlayerID
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
	ErrInvalidPlayer Error = "invalid player"
	ErrGameOver      Error = "game is over"
	ErrNotYourTurn   Error = "not your turn"
)
