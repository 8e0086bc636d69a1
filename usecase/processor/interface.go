package processor

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"go.uber.org/zap"
)

type IProcessor interface {
	ProcessNewGame(ctx context.Context,
		logger *zap.Logger,
		s *entity.RoundState) error

	// ProcessAction applies one player action and reports whether the
	// player's turn is over.
	ProcessAction(ctx context.Context,
		logger *zap.Logger,
		s *entity.RoundState,
		req *entity.ActionRequest) (bool, error)

	ProcessDealerTurn(ctx context.Context,
		logger *zap.Logger,
		s *entity.RoundState) error

	ProcessFinishGame(ctx context.Context,
		logger *zap.Logger,
		s *entity.RoundState) *entity.RoundResult

	IBaseProcessor
}
