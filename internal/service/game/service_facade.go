package game

import "go.uber.org/zap"

// Service is the entry point for game logic (facade)
type Service struct {
	log *zap.SugaredLogger
}

func NewService(log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{log: log}
}

// NewGame starts a fresh session with an empty board
func (s *Service) NewGame(opts Options) *GameSession {
	return NewGameSession(opts, s.log)
}
