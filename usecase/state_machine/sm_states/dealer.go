package smstates

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/pkg/packager"
)

type StateDealer struct {
	StateBase
}

func NewStateDealer(fn FireFn) StateHandler {
	return &StateDealer{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateDealer) Enter(ctx context.Context, _ ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	state := procPkg.GetState()
	procPkg.GetProcessor().NotifyUpdateGameState(state)
	if err := procPkg.GetProcessor().ProcessDealerTurn(ctx, procPkg.GetLogger(), state); err != nil {
		return err
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}

func (s *StateDealer) Process(ctx context.Context, args ...interface{}) error {
	return nil
}
