package smstates

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
)

// StateIdle is a round that has been created but not dealt.
type StateIdle struct {
	StateBase
}

func NewIdleState(fn FireFn) StateHandler {
	return &StateIdle{
		StateBase: NewStateBase(fn),
	}
}

func (s *StateIdle) Enter(ctx context.Context, _ ...interface{}) error {
	return nil
}

func (s *StateIdle) Process(ctx context.Context, args ...interface{}) error {
	return entity.NewActionError(actionFromArgs(args), "round has not been dealt")
}

func actionFromArgs(args []interface{}) entity.Action {
	if req := requestFromArgs(args); req != nil {
		return req.Action
	}
	return ""
}

func requestFromArgs(args []interface{}) *entity.ActionRequest {
	if len(args) == 0 {
		return nil
	}
	req, _ := args[0].(*entity.ActionRequest)
	return req
}
