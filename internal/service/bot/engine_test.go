package bot

import (
	"math"
	"math/rand"
	"testing"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

func drop(t *testing.T, b *domain.Board, owner domain.PlayerID, columns ...int) {
	t.Helper()
	for _, col := range columns {
		if err := b.Apply(col, owner); err != nil {
			t.Fatalf("apply %d for %v: %v", col, owner, err)
		}
	}
}

// plainMinimax scores a position without pruning
func plainMinimax(b *domain.Board, depth int, maximizing bool) int {
	if depth <= 0 || b.HasWon(domain.Human) || b.HasWon(domain.AI) || len(b.LegalColumns()) == 0 {
		return Evaluate(b, domain.AI, domain.Human)
	}

	owner := domain.Human
	best := math.MaxInt
	if maximizing {
		owner = domain.AI
		best = math.MinInt
	}
	for _, col := range b.LegalColumns() {
		_ = b.Apply(col, owner)
		score := plainMinimax(b, depth-1, !maximizing)
		b.Undo(col)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

func randomPosition(rng *rand.Rand, plies int) *domain.Board {
	b := domain.NewBoard()
	owner := domain.Human
	for i := 0; i < plies; i++ {
		legal := b.LegalColumns()
		if len(legal) == 0 || domain.OutcomeOf(b).IsFinished() {
			break
		}
		_ = b.Apply(legal[rng.Intn(len(legal))], owner)
		if owner == domain.Human {
			owner = domain.AI
		} else {
			owner = domain.Human
		}
	}
	return b
}

func TestBestMove_TakesImmediateWin(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(t *testing.T, b *domain.Board)
		want  int
	}{
		{
			name: "horizontal open fourth",
			setup: func(t *testing.T, b *domain.Board) {
				drop(t, b, domain.AI, 1, 2, 3)
			},
			want: 4,
		},
		{
			name: "vertical open fourth",
			setup: func(t *testing.T, b *domain.Board) {
				drop(t, b, domain.AI, 1, 1, 1)
				drop(t, b, domain.Human, 2, 2)
			},
			want: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := domain.NewBoard()
			tc.setup(t, b)

			engine := NewEngine(b, domain.AI, domain.Human, nil)
			if got := engine.BestMove(1); got != tc.want {
				t.Errorf("BestMove(1) = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBestMove_BlocksHumanThree(t *testing.T) {
	b := domain.NewBoard()
	drop(t, b, domain.Human, 1, 2, 3)
	drop(t, b, domain.AI, 7, 7)

	engine := NewEngine(b, domain.AI, domain.Human, nil)
	for _, depth := range []int{2, 4} {
		if got := engine.BestMove(depth); got != 4 {
			t.Errorf("BestMove(%d) = %d, want 4", depth, got)
		}
	}
}

func TestBestMove_EmptyBoardDefaultDepth(t *testing.T) {
	b := domain.NewBoard()
	engine := NewEngine(b, domain.AI, domain.Human, nil)

	result := engine.Search(DefaultDepth)
	if result.Column != 6 || result.Score != 766 {
		t.Errorf("Search(%d) = %+v, want column 6 with score 766", DefaultDepth, result)
	}
	if result.Nodes == 0 {
		t.Error("search should count evaluated nodes")
	}
	if *b != *domain.NewBoard() {
		t.Error("search left pieces on the board")
	}
}

func TestBestMove_FullBoard(t *testing.T) {
	b := domain.NewBoard()
	for col := 1; col <= domain.Columns; col++ {
		for row := domain.Rows - 1; row >= 0; row-- {
			owner := domain.Human
			if (col-1)%2 == (row/2)%2 {
				owner = domain.AI
			}
			drop(t, b, owner, col)
		}
	}

	engine := NewEngine(b, domain.AI, domain.Human, nil)
	if got := engine.BestMove(DefaultDepth); got != NoMove {
		t.Errorf("BestMove on a full board = %d, want NoMove", got)
	}
}

func TestSearch_RestoresBoardAndReturnsLegalColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 40; i++ {
		b := randomPosition(rng, rng.Intn(30))
		before := *b
		legal := b.LegalColumns()

		engine := NewEngine(b, domain.AI, domain.Human, nil)
		got := engine.BestMove(3)

		if *b != before {
			t.Fatalf("position %d: search did not restore the board", i)
		}
		if len(legal) == 0 {
			if got != NoMove {
				t.Fatalf("position %d: full board returned %d", i, got)
			}
			continue
		}
		found := false
		for _, col := range legal {
			if col == got {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("position %d: BestMove = %d, not in legal columns %v", i, got, legal)
		}
	}
}

func TestSearch_MatchesPlainMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))

	for i := 0; i < 25; i++ {
		b := randomPosition(rng, 4+rng.Intn(16))
		if len(b.LegalColumns()) == 0 {
			continue
		}
		depth := 1 + rng.Intn(3)

		engine := NewEngine(b, domain.AI, domain.Human, nil)
		result := engine.Search(depth)

		best := math.MinInt
		scores := map[int]int{}
		for _, col := range b.LegalColumns() {
			_ = b.Apply(col, domain.AI)
			scores[col] = plainMinimax(b, depth-1, false)
			b.Undo(col)
			best = max(best, scores[col])
		}

		if scores[result.Column] != best {
			t.Fatalf("position %d depth %d: chose column %d scored %d, best plain score is %d (%v)",
				i, depth, result.Column, scores[result.Column], best, scores)
		}
		if result.Score != best {
			t.Fatalf("position %d depth %d: pruned score %d, plain score %d", i, depth, result.Score, best)
		}
	}
}

func TestSearch_NonPositiveDepthStopsAfterOnePly(t *testing.T) {
	b := domain.NewBoard()
	drop(t, b, domain.Human, 1, 2, 3)
	drop(t, b, domain.AI, 7, 7)
	engine := NewEngine(b, domain.AI, domain.Human, nil)

	want := engine.Search(1)
	for _, depth := range []int{0, -3} {
		got := engine.Search(depth)
		if got != want {
			t.Errorf("Search(%d) = %+v, want %+v", depth, got, want)
		}
		if got.Nodes != domain.Columns {
			t.Errorf("Search(%d) evaluated %d nodes, want %d", depth, got.Nodes, domain.Columns)
		}
	}
}
