package api

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/pkg/packager"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/engine"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/processor"
	gsm "github.com/ciaolink-game-platform/blackjack-solo/usecase/state_machine"
	smstates "github.com/ciaolink-game-platform/blackjack-solo/usecase/state_machine/sm_states"
	"go.uber.org/zap"
)

// RoundHandler drives one round for a front end. Actions go in one at a
// time; the dealer turn and settlement run by themselves once the player's
// turn ends.
type RoundHandler struct {
	processor processor.IProcessor
	machine   gsm.UseCase
	state     *entity.RoundState
	logger    *zap.Logger
}

type roundOptions struct {
	chooser  engine.AceChooser
	notifier processor.Notifier
	roundID  string
}

type RoundOption func(*roundOptions)

// WithAceChooser asks chooser for the value of every Ace the player draws
// without an explicit choice.
func WithAceChooser(chooser engine.AceChooser) RoundOption {
	return func(o *roundOptions) { o.chooser = chooser }
}

func WithNotifier(n processor.Notifier) RoundOption {
	return func(o *roundOptions) { o.notifier = n }
}

func WithRoundID(id string) RoundOption {
	return func(o *roundOptions) { o.roundID = id }
}

func NewRoundHandler(logger *zap.Logger, deck *entity.Deck, chips *entity.Chips, opts ...RoundOption) *RoundHandler {
	o := &roundOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.roundID == "" {
		o.roundID = entity.NewRoundID()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	proc := processor.NewMatchProcessor(engine.NewGameEngine(), o.chooser)
	proc.SetNotifier(o.notifier)
	return &RoundHandler{
		processor: proc,
		machine:   gsm.NewGameStateMachine(smstates.NewStateMachineState()),
		state:     entity.NewRoundState(o.roundID, deck, chips),
		logger:    logger.With(zap.String("module", entity.ModuleName)),
	}
}

func (m *RoundHandler) withPackager(ctx context.Context) context.Context {
	procPkg := packager.NewProcessorPackage(m.state, m.processor, m.logger, ctx)
	return packager.GetContextWithProcessorPackager(procPkg)
}

// Deal runs the opening deal. On a player natural the round is already
// resolved when Deal returns.
func (m *RoundHandler) Deal(ctx context.Context) error {
	return m.machine.TriggerDeal(m.withPackager(ctx))
}

// Apply runs one player action. A rejected action leaves the round as it was.
func (m *RoundHandler) Apply(ctx context.Context, action entity.Action, choice entity.AceChoice) error {
	if m.machine.IsResolved() {
		return entity.ErrRoundResolved
	}
	return m.machine.FireProcessEvent(m.withPackager(ctx), &entity.ActionRequest{
		Action:    action,
		AceChoice: choice,
	})
}

func (m *RoundHandler) ID() string                  { return m.state.ID() }
func (m *RoundHandler) State() entity.GameState     { return m.machine.GetState() }
func (m *RoundHandler) IsResolved() bool            { return m.machine.IsResolved() }
func (m *RoundHandler) PlayerHands() []*entity.Hand { return m.state.PlayerHands() }
func (m *RoundHandler) DealerHand() *entity.Hand    { return m.state.DealerHand() }
func (m *RoundHandler) CurrentHandN0() entity.HandN0 {
	return m.state.GetCurrentHandN0()
}

func (m *RoundHandler) PlayerHand(n entity.HandN0) *entity.Hand {
	return m.state.PlayerHand(n)
}

func (m *RoundHandler) LegalActions() []entity.Action {
	return m.state.GetLegalActions()
}

// Result is nil until the round is resolved.
func (m *RoundHandler) Result() *entity.RoundResult {
	return m.state.GetResult()
}

// RunDealerPolicy draws into dealer until it reaches 17 or busts.
func RunDealerPolicy(dealer *entity.Hand, deck *entity.Deck) error {
	_, err := engine.NewGameEngine().RunDealerPolicy(dealer, deck)
	return err
}
