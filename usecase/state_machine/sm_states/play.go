package smstates

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/pkg/packager"
)

// StatePlay takes player actions one at a time through TriggerProcess.
type StatePlay struct {
	StateBase
}

func NewStatePlay(fn FireFn) StateHandler {
	return &StatePlay{
		StateBase: NewStateBase(fn),
	}
}

func (s *StatePlay) Enter(ctx context.Context, _ ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	procPkg.GetProcessor().NotifyUpdateGameState(procPkg.GetState())
	return nil
}

func (s *StatePlay) Process(ctx context.Context, args ...interface{}) error {
	procPkg := packager.GetProcessorPackagerFromContext(ctx)
	state := procPkg.GetState()
	req := requestFromArgs(args)
	if req == nil {
		return nil
	}
	done, err := procPkg.GetProcessor().ProcessAction(ctx, procPkg.GetLogger(), state, req)
	if err != nil || !done {
		return err
	}
	if state.IsDealerSkipped() {
		procPkg.GetLogger().Info("[play] ended without dealer turn")
		return s.Trigger(ctx, TriggerRoundOver)
	}
	return s.Trigger(ctx, TriggerStateFinishSuccess)
}
