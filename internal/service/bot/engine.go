package bot

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// NoMove is returned when the board has no legal column left
const NoMove = -1

// SearchResult is what one BestMove search settled on
type SearchResult struct {
	Column int
	Score  int
	Nodes  int
}

// Engine runs a fixed-depth minimax with alpha-beta pruning over a shared
// board. The board is mutated in place during the search and is always
// restored before Search returns.
type Engine struct {
	board    *domain.Board
	computer domain.PlayerID
	human    domain.PlayerID
	log      *zap.SugaredLogger

	nodes int
}

func NewEngine(board *domain.Board, computer, human domain.PlayerID, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		board:    board,
		computer: computer,
		human:    human,
		log:      log,
	}
}

// BestMove returns the column judged best for the computer, or NoMove
func (e *Engine) BestMove(depth int) int {
	return e.Search(depth).Column
}

// Search scores every legal column for the computer and keeps the first
// one with the strictly greatest score.
func (e *Engine) Search(depth int) SearchResult {
	start := time.Now()
	e.nodes = 0

	bestScore := math.MinInt
	bestCol := NoMove

	for _, col := range e.board.LegalColumns() {
		score := e.speculate(col, e.computer, func() int {
			return e.minimize(depth-1, math.MinInt, math.MaxInt)
		})
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	result := SearchResult{Column: bestCol, Score: bestScore, Nodes: e.nodes}
	e.log.Debugw("search finished",
		"depth", depth,
		"column", result.Column,
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", time.Since(start),
	)
	return result
}

// maximize is the computer's ply
func (e *Engine) maximize(depth, alpha, beta int) int {
	if e.terminal(depth) {
		return e.evaluate()
	}

	bestScore := math.MinInt
	for _, col := range e.board.LegalColumns() {
		score := e.speculate(col, e.computer, func() int {
			return e.minimize(depth-1, alpha, beta)
		})
		bestScore = max(bestScore, score)
		if bestScore >= beta {
			return bestScore // beta cutoff
		}
		alpha = max(alpha, bestScore)
	}
	return bestScore
}

// minimize is the human's hypothetical ply
func (e *Engine) minimize(depth, alpha, beta int) int {
	if e.terminal(depth) {
		return e.evaluate()
	}

	bestScore := math.MaxInt
	for _, col := range e.board.LegalColumns() {
		score := e.speculate(col, e.human, func() int {
			return e.maximize(depth-1, alpha, beta)
		})
		bestScore = min(bestScore, score)
		if bestScore <= alpha {
			return bestScore // alpha cutoff
		}
		beta = min(beta, bestScore)
	}
	return bestScore
}

// speculate drops a piece, scores the resulting position with next and
// takes the piece back on every exit path.
func (e *Engine) speculate(col int, owner domain.PlayerID, next func() int) int {
	if err := e.board.Apply(col, owner); err != nil {
		// only legal columns are explored, so this is a broken invariant
		panic(fmt.Sprintf("bot: speculative move in column %d: %v", col, err))
	}
	defer e.board.Undo(col)
	return next()
}

func (e *Engine) terminal(depth int) bool {
	return depth <= 0 ||
		e.board.HasWon(e.human) ||
		e.board.HasWon(e.computer) ||
		len(e.board.LegalColumns()) == 0
}

func (e *Engine) evaluate() int {
	e.nodes++
	return Evaluate(e.board, e.computer, e.human)
}
