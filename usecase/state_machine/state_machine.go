package state_machine

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/pkg/packager"
	lib "github.com/ciaolink-game-platform/blackjack-solo/usecase/state_machine/sm_states"
	"github.com/qmuntal/stateless"
	"go.uber.org/zap"
)

const (
	StateIdle       = entity.GameStateIdle
	StateDealing    = entity.GameStateDealing
	StatePlayerTurn = entity.GameStatePlayerTurn
	StateDealerTurn = entity.GameStateDealerTurn
	StateResolved   = entity.GameStateResolved
)

type UseCase interface {
	GetState() entity.GameState
	IsPlayingState() bool
	IsResolved() bool
	TriggerDeal(ctx context.Context) error
	FireProcessEvent(ctx context.Context, args ...interface{}) error
	ToGraph() string
}

// NewGameStateMachine builds the round machine:
// IDLE -> DEALING -> PLAYER_TURN -> DEALER_TURN -> RESOLVED, with DEALING and
// PLAYER_TURN able to jump to RESOLVED.
func NewGameStateMachine(stateMachineState lib.StateMachineState) UseCase {
	gs := &Machine{
		state: stateless.NewStateMachine(StateIdle),
	}
	gs.configure(stateMachineState)

	return gs
}

var _ UseCase = &Machine{}

type Machine struct {
	state *stateless.StateMachine
}

func (m *Machine) GetState() entity.GameState {
	return m.state.MustState().(entity.GameState)
}

func (m *Machine) IsPlayingState() bool {
	return m.GetState() == StatePlayerTurn
}

func (m *Machine) IsResolved() bool {
	return m.GetState() == StateResolved
}

func (m *Machine) TriggerDeal(ctx context.Context) error {
	return m.state.FireCtx(ctx, lib.TriggerDeal)
}

func (m *Machine) FireProcessEvent(ctx context.Context, args ...interface{}) error {
	return m.state.FireCtx(ctx, lib.TriggerProcess, args...)
}

func (m *Machine) ToGraph() string {
	return m.state.ToGraph()
}

func (m *Machine) configure(stateMachineState lib.StateMachineState) {
	fireCtx := m.state.FireCtx
	m.state.OnTransitioning(func(ctx context.Context, t stateless.Transition) {
		procPkg := packager.GetProcessorPackagerFromContext(ctx)
		if procPkg == nil {
			return
		}
		if t.Source != t.Destination {
			procPkg.GetLogger().With(
				zap.Any("source", t.Source),
				zap.Any("destination", t.Destination),
				zap.Any("transition", t.Trigger),
			).Info("OnTransitioning")
		}
		stateMachineState.OnTransitioning(ctx, t)
		procPkg.GetState().SetGameState(t.Destination.(entity.GameState))
	})

	{
		idle := stateMachineState.NewIdleState(fireCtx)
		m.state.Configure(StateIdle).
			OnEntry(idle.Enter).
			OnExit(idle.Exit).
			InternalTransition(lib.TriggerProcess, idle.Process).
			Permit(lib.TriggerDeal, StateDealing)
	}
	{
		dealing := stateMachineState.NewStateDealing(fireCtx)
		m.state.Configure(StateDealing).
			OnEntry(dealing.Enter).
			OnExit(dealing.Exit).
			InternalTransition(lib.TriggerProcess, dealing.Process).
			Permit(lib.TriggerStateFinishSuccess, StatePlayerTurn).
			Permit(lib.TriggerRoundOver, StateResolved)
	}
	{
		play := stateMachineState.NewStatePlay(fireCtx)
		m.state.Configure(StatePlayerTurn).
			OnEntry(play.Enter).
			OnExit(play.Exit).
			InternalTransition(lib.TriggerProcess, play.Process).
			Permit(lib.TriggerStateFinishSuccess, StateDealerTurn).
			Permit(lib.TriggerRoundOver, StateResolved)
	}
	{
		dealer := stateMachineState.NewStateDealer(fireCtx)
		m.state.Configure(StateDealerTurn).
			OnEntry(dealer.Enter).
			OnExit(dealer.Exit).
			InternalTransition(lib.TriggerProcess, dealer.Process).
			Permit(lib.TriggerStateFinishSuccess, StateResolved)
	}
	{
		reward := stateMachineState.NewStateReward(fireCtx)
		m.state.Configure(StateResolved).
			OnEntry(reward.Enter).
			OnExit(reward.Exit).
			InternalTransition(lib.TriggerProcess, reward.Process)
	}
}
