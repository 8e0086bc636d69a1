package api

import (
	"context"
	"math/rand"
	"time"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/engine"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/processor"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Session keeps one bankroll across rounds. Every round gets a fresh deck
// shuffled from the session rng, so a fixed seed replays the same session.
type Session struct {
	id            string
	chips         *entity.Chips
	startingChips int64
	rng           *rand.Rand
	logger        *zap.Logger
	chooser       engine.AceChooser
	notifier      processor.Notifier

	rounds int
	wins   int
	losses int
	pushes int
}

type Summary struct {
	SessionID   string
	Rounds      int
	Wins        int
	Losses      int
	Pushes      int
	Total       decimal.Decimal
	NetWinnings decimal.Decimal
}

// NewSession starts a bankroll of startingChips. A zero seed seeds from the clock.
func NewSession(logger *zap.Logger, startingChips int64, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:            id,
		chips:         entity.NewChips(startingChips),
		startingChips: startingChips,
		rng:           rand.New(rand.NewSource(seed)),
		logger:        logger.With(zap.String("session-id", id)),
	}
}

func (s *Session) SetAceChooser(c engine.AceChooser) { s.chooser = c }
func (s *Session) SetNotifier(n processor.Notifier)  { s.notifier = n }

func (s *Session) ID() string           { return s.id }
func (s *Session) Chips() *entity.Chips { return s.chips }

// StartRound places the bet, shuffles a new deck and deals. The returned
// round may already be resolved on a natural, in which case it is recorded.
func (s *Session) StartRound(ctx context.Context, bet int64) (*RoundHandler, error) {
	if err := s.chips.PlaceBet(bet); err != nil {
		s.logger.With(zap.Int64("bet", bet), zap.Error(err)).Warn("bet-rejected")
		return nil, err
	}
	deck := entity.NewDeck()
	deck.Shuffle(s.rng)
	round := NewRoundHandler(s.logger, deck, s.chips,
		WithAceChooser(s.chooser),
		WithNotifier(s.notifier),
	)
	if err := round.Deal(ctx); err != nil {
		return nil, err
	}
	s.logger.With(zap.String("round-id", round.ID()), zap.Int64("bet", bet)).Info("round started")
	if round.IsResolved() {
		s.Record(round.Result())
	}
	return round, nil
}

// Play applies an action and records the round once it resolves.
func (s *Session) Play(ctx context.Context, round *RoundHandler, action entity.Action, choice entity.AceChoice) error {
	if err := round.Apply(ctx, action, choice); err != nil {
		return err
	}
	if round.IsResolved() {
		s.Record(round.Result())
	}
	return nil
}

func (s *Session) Record(result *entity.RoundResult) {
	if result == nil {
		return
	}
	s.rounds++
	switch {
	case result.Net.IsPositive():
		s.wins++
	case result.Net.IsNegative():
		s.losses++
	default:
		s.pushes++
	}
}

// IsOver is true once the bankroll cannot cover another minimum bet.
func (s *Session) IsOver() bool { return s.chips.IsBroke() }

func (s *Session) Summary() *Summary {
	return &Summary{
		SessionID:   s.id,
		Rounds:      s.rounds,
		Wins:        s.wins,
		Losses:      s.losses,
		Pushes:      s.pushes,
		Total:       s.chips.Total(),
		NetWinnings: s.chips.Total().Sub(decimal.NewFromInt(s.startingChips)),
	}
}
