package smstates

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/pkg/packager"
)

// StateDealing deals the opening hands. A player natural, or an opening
// hand already bust by two Aces chosen at 11, skips straight to the reward
// state.
type StateDealing struct {
	StateBase
}

func NewStateDealing(fn FireFn) StateHandler {
	return &StateDealing{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateDealing) Enter(ctx context.Context, _ ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	state := procPkg.GetState()
	procPkg.GetProcessor().NotifyUpdateGameState(state)
	if err := procPkg.GetProcessor().ProcessNewGame(ctx, procPkg.GetLogger(), state); err != nil {
		return err
	}
	if state.IsNatural() {
		procPkg.GetLogger().Info("[dealing] natural blackjack")
		return s.Trigger(ctx, TriggerRoundOver)
	}
	if state.PlayerHand(entity.Hand1st).IsBust() {
		procPkg.GetLogger().Info("[dealing] opening hand bust")
		return s.Trigger(ctx, TriggerRoundOver)
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}

func (s *StateDealing) Process(ctx context.Context, args ...interface{}) error {
	return nil
}
