package service

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactwo/internal/apperror"
)

type moveAdvisor interface {
	BestMove() (int, bool)
}

type BotService interface {
	ChooseMove() (int, error)
}

type botService struct {
	logger  *slog.Logger
	advisor moveAdvisor
}

func NewBotService(logger *slog.Logger, advisor moveAdvisor) BotService {
	return &botService{
		logger:  logger.With("component", "bot"),
		advisor: advisor,
	}
}

// ChooseMove picks the best scoring legal cell of the current score table.
func (that *botService) ChooseMove() (int, error) {
	cell, ok := that.advisor.BestMove()
	if !ok {
		return -1, apperror.ErrNoLegalMoves
	}

	that.logger.Debug("move chosen", "cell", cell)

	return cell, nil
}
