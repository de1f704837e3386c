package bot

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

// DefaultDepth is the reference search depth in plies
const DefaultDepth = 5

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Hard if invalid or empty
func ParseDifficulty(difficulty string) BotDifficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyHard
	}
}

// KnownDifficulty reports whether ParseDifficulty recognises difficulty
func KnownDifficulty(difficulty string) bool {
	switch BotDifficulty(difficulty) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Depth is the fixed search depth used for the whole game
func (d BotDifficulty) Depth() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 3
	default:
		return DefaultDepth
	}
}
