package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
)

// Mode decides which owner tags take part in a session
type Mode int

const (
	ModeHumanVsHuman Mode = iota
	ModeHumanVsComputer
)

func (m Mode) String() string {
	if m == ModeHumanVsComputer {
		return "human-vs-computer"
	}
	return "human-vs-human"
}

type Options struct {
	Mode       Mode
	HumanFirst bool // only used against the computer
	Depth      int
}

// GameSession owns the board for one local game and sequences the turns.
// It is not safe for concurrent use.
type GameSession struct {
	GameID    string
	Mode      Mode
	Depth     int
	CreatedAt time.Time

	board   *domain.Board
	engine  *bot.Engine
	current domain.PlayerID
	moves   []domain.Move
	log     *zap.SugaredLogger
}

func NewGameSession(opts Options, log *zap.SugaredLogger) *GameSession {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	depth := opts.Depth
	if depth <= 0 {
		depth = bot.DefaultDepth
	}

	board := domain.NewBoard()
	session := &GameSession{
		GameID:    uid.NewSessionID(),
		Mode:      opts.Mode,
		Depth:     depth,
		CreatedAt: time.Now(),
		board:     board,
	}
	session.log = log.With("game_id", session.GameID)

	switch opts.Mode {
	case ModeHumanVsComputer:
		session.engine = bot.NewEngine(board, domain.AI, domain.Human, session.log)
		session.current = domain.Human
		if !opts.HumanFirst {
			session.current = domain.AI
		}
	default:
		session.current = domain.Player1
	}

	session.log.Infow("game started", "mode", opts.Mode.String(), "depth", depth, "first", session.current.String())
	return session
}

// Board returns a snapshot; moves only go through PlayHuman and PlayComputer
func (s *GameSession) Board() *domain.Board {
	return s.board.Clone()
}

// Current is the owner whose turn it is
func (s *GameSession) Current() domain.PlayerID {
	return s.current
}

func (s *GameSession) IsComputerTurn() bool {
	return s.engine != nil && s.current == domain.AI
}

func (s *GameSession) Outcome() domain.Outcome {
	return domain.OutcomeOf(s.board)
}

func (s *GameSession) Over() bool {
	return s.Outcome().IsFinished()
}

// History returns a copy of the moves played so far
func (s *GameSession) History() []domain.Move {
	moves := make([]domain.Move, len(s.moves))
	copy(moves, s.moves)
	return moves
}

// PlayHuman drops the current human's piece in column. On error the turn
// does not pass, so the same player can try again.
func (s *GameSession) PlayHuman(column int) error {
	if s.Over() {
		return domain.ErrGameOver
	}
	if s.IsComputerTurn() {
		return domain.ErrNotYourTurn
	}
	return s.play(column)
}

// PlayComputer asks the engine for a column and plays it
func (s *GameSession) PlayComputer() (int, error) {
	if s.Over() {
		return bot.NoMove, domain.ErrGameOver
	}
	if !s.IsComputerTurn() {
		return bot.NoMove, domain.ErrNotYourTurn
	}

	result := s.engine.Search(s.Depth)
	if result.Column == bot.NoMove {
		return bot.NoMove, domain.ErrGameOver
	}
	if err := s.play(result.Column); err != nil {
		return bot.NoMove, fmt.Errorf("computer move in column %d: %w", result.Column, err)
	}
	return result.Column, nil
}

func (s *GameSession) play(column int) error {
	owner := s.current
	if err := s.board.Apply(column, owner); err != nil {
		s.log.Debugw("move rejected", "owner", owner.String(), "column", column, "error", err)
		return err
	}
	s.moves = append(s.moves, domain.Move{Column: column, Owner: owner})
	s.log.Infow("move applied", "owner", owner.String(), "column", column, "move", len(s.moves))

	if outcome := s.Outcome(); outcome.IsFinished() {
		s.log.Infow("game finished",
			"status", outcome.Status,
			"winner", outcome.Winner.String(),
			"total_moves", len(s.moves),
			"duration", time.Since(s.CreatedAt),
		)
		return nil
	}

	s.current = s.opponent(owner)
	return nil
}

func (s *GameSession) opponent(p domain.PlayerID) domain.PlayerID {
	switch p {
	case domain.Player1:
		return domain.Player2
	case domain.Player2:
		return domain.Player1
	case domain.Human:
		return domain.AI
	default:
		return domain.Human
	}
}
