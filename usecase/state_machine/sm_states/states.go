package smstates

import (
	"context"

	"github.com/qmuntal/stateless"
)

type StateMachineState interface {
	NewIdleState(fn FireFn) StateHandler
	NewStateDealing(fn FireFn) StateHandler
	NewStatePlay(fn FireFn) StateHandler
	NewStateDealer(fn FireFn) StateHandler
	NewStateReward(fn FireFn) StateHandler
	OnTransitioning(ctx context.Context, t stateless.Transition)
}

type stateMachine struct{}

func NewStateMachineState() StateMachineState {
	s := stateMachine{}
	return &s
}

func (sm *stateMachine) NewIdleState(fn FireFn) StateHandler {
	return NewIdleState(fn)
}

func (sm *stateMachine) NewStateDealing(fn FireFn) StateHandler {
	return NewStateDealing(fn)
}

func (sm *stateMachine) NewStatePlay(fn FireFn) StateHandler {
	return NewStatePlay(fn)
}

func (sm *stateMachine) NewStateDealer(fn FireFn) StateHandler {
	return NewStateDealer(fn)
}

func (sm *stateMachine) NewStateReward(fn FireFn) StateHandler {
	return NewStateReward(fn)
}

func (sm *stateMachine) OnTransitioning(ctx context.Context, t stateless.Transition) {}
