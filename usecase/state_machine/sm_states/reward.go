package smstates

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/pkg/packager"
)

// StateReward settles the round against the bankroll. It is terminal.
type StateReward struct {
	StateBase
}

func NewStateReward(fn FireFn) StateHandler {
	return &StateReward{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateReward) Enter(ctx context.Context, _ ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	procPkg.GetLogger().Info("[reward] enter")
	state := procPkg.GetState()
	procPkg.GetProcessor().NotifyUpdateGameState(state)
	procPkg.GetProcessor().ProcessFinishGame(ctx, procPkg.GetLogger(), state)
	return nil
}

func (s *StateReward) Process(ctx context.Context, args ...interface{}) error {
	return entity.ErrRoundResolved
}
