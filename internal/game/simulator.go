package game

import (
	"log/slog"
)

// Simulator carries the tuning and logger for every state transition. It
// holds no game state and is safe to share.
type Simulator struct {
	tuning Tuning
	logger *slog.Logger
}

type Option func(*Simulator)

func WithTuning(t Tuning) Option {
	return func(s *Simulator) {
		s.tuning = t
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSimulator(opts ...Option) (*Simulator, error) {
	s := &Simulator{
		tuning: DefaultTuning(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.tuning.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulator) Tuning() Tuning {
	return s.tuning
}
