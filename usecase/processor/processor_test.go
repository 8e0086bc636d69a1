package processor

import (
	"context"
	"testing"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recorder struct {
	updates []*Update
}

func (r *recorder) Notify(u *Update) { r.updates = append(r.updates, u) }

func (r *recorder) kinds() []UpdateKind {
	result := make([]UpdateKind, 0, len(r.updates))
	for _, u := range r.updates {
		result = append(result, u.Kind)
	}
	return result
}

func newDealtState(t *testing.T, bet int64, ranks ...entity.Rank) *entity.RoundState {
	t.Helper()
	deck := make([]*entity.Card, 0, len(ranks))
	for _, r := range ranks {
		deck = append(deck, entity.NewCard(entity.SuitDiamonds, r))
	}
	chips := entity.NewChips(100)
	require.NoError(t, chips.PlaceBet(bet))
	return entity.NewRoundState("test", entity.NewDeckFromCards(deck...), chips)
}

func TestProcessNewGame(t *testing.T) {
	rec := &recorder{}
	p := NewMatchProcessor(engine.NewGameEngine(), nil)
	p.SetNotifier(rec)
	s := newDealtState(t, 10, entity.RankTen, entity.RankSeven, entity.RankNine, entity.RankEight)

	require.NoError(t, p.ProcessNewGame(context.Background(), zaptest.NewLogger(t), s))
	assert.Equal(t, []UpdateKind{UpdateDeal, UpdateDeal, UpdateDealerDeal, UpdateDealerDeal}, rec.kinds())
	assert.Equal(t, entity.Hand1st, rec.updates[0].HandN0)

	rec.updates[0].Card.Value = 1
	assert.Equal(t, 17, s.PlayerHand(entity.Hand1st).Value())
	assert.Equal(t, 10, s.PlayerHand(entity.Hand1st).First().Value)
}

func TestProcessAction(t *testing.T) {
	tests := []struct {
		name      string
		deck      []entity.Rank
		actions   []entity.Action
		wantDone  bool
		wantValue int
		wantKinds []UpdateKind
	}{
		{
			name:      "hit",
			deck:      []entity.Rank{entity.RankTen, entity.RankTwo, entity.RankNine, entity.RankEight, entity.RankFive},
			actions:   []entity.Action{entity.ActionHit},
			wantValue: 17,
			wantKinds: []UpdateKind{UpdateDeal},
		},
		{
			name:      "hit to bust ends the turn",
			deck:      []entity.Rank{entity.RankTen, entity.RankSix, entity.RankNine, entity.RankEight, entity.RankKing},
			actions:   []entity.Action{entity.ActionHit},
			wantDone:  true,
			wantValue: 26,
			wantKinds: []UpdateKind{UpdateDeal},
		},
		{
			name:      "stand",
			deck:      []entity.Rank{entity.RankTen, entity.RankSeven, entity.RankNine, entity.RankEight},
			actions:   []entity.Action{entity.ActionStand},
			wantDone:  true,
			wantValue: 17,
		},
		{
			name:      "double down",
			deck:      []entity.Rank{entity.RankFive, entity.RankSix, entity.RankNine, entity.RankEight, entity.RankTen},
			actions:   []entity.Action{entity.ActionDoubleDown},
			wantDone:  true,
			wantValue: 21,
			wantKinds: []UpdateKind{UpdateBet, UpdateDeal},
		},
		{
			name:      "split plays the first hand",
			deck:      []entity.Rank{entity.RankEight, entity.RankEight, entity.RankNine, entity.RankEight},
			actions:   []entity.Action{entity.ActionSplit},
			wantValue: 8,
			wantKinds: []UpdateKind{UpdateSplit},
		},
		{
			name:      "surrender",
			deck:      []entity.Rank{entity.RankTen, entity.RankSix, entity.RankNine, entity.RankEight},
			actions:   []entity.Action{entity.ActionSurrender},
			wantDone:  true,
			wantValue: 16,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			logger := zaptest.NewLogger(t)
			p := NewMatchProcessor(engine.NewGameEngine(), nil)
			s := newDealtState(t, 10, tt.deck...)
			require.NoError(t, p.ProcessNewGame(ctx, logger, s))
			s.SetGameState(entity.GameStatePlayerTurn)

			rec := &recorder{}
			p.SetNotifier(rec)
			var done bool
			var err error
			for _, a := range tt.actions {
				done, err = p.ProcessAction(ctx, logger, s, &entity.ActionRequest{Action: a})
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantDone, done)
			assert.Equal(t, tt.wantValue, s.CurrentHand().Value())
			if tt.wantKinds == nil {
				assert.Empty(t, rec.updates)
			} else {
				assert.Equal(t, tt.wantKinds, rec.kinds())
			}
		})
	}
}

func TestProcessActionSplitHands(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	p := NewMatchProcessor(engine.NewGameEngine(), nil)
	s := newDealtState(t, 10,
		entity.RankEight, entity.RankEight, entity.RankNine, entity.RankEight,
		entity.RankThree, entity.RankKing)
	require.NoError(t, p.ProcessNewGame(ctx, logger, s))
	s.SetGameState(entity.GameStatePlayerTurn)

	play := func(a entity.Action) bool {
		done, err := p.ProcessAction(ctx, logger, s, &entity.ActionRequest{Action: a})
		require.NoError(t, err)
		return done
	}
	assert.False(t, play(entity.ActionSplit))
	assert.False(t, play(entity.ActionHit))
	assert.Equal(t, 11, s.PlayerHand(entity.Hand1st).Value())
	assert.False(t, play(entity.ActionStand))
	assert.Equal(t, entity.Hand2nd, s.GetCurrentHandN0())
	assert.False(t, play(entity.ActionHit))
	assert.Equal(t, 18, s.PlayerHand(entity.Hand2nd).Value())
	assert.True(t, play(entity.ActionStand))
}

func TestProcessActionRejected(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	p := NewMatchProcessor(engine.NewGameEngine(), nil)
	s := newDealtState(t, 10, entity.RankTen, entity.RankSeven, entity.RankNine, entity.RankEight)
	require.NoError(t, p.ProcessNewGame(ctx, logger, s))
	s.SetGameState(entity.GameStatePlayerTurn)

	for _, a := range []entity.Action{entity.ActionSplit, entity.ActionInsurance} {
		done, err := p.ProcessAction(ctx, logger, s, &entity.ActionRequest{Action: a})
		assert.ErrorIs(t, err, entity.ErrInvalidAction)
		assert.False(t, done)
	}
	assert.Equal(t, 0, s.PlayActionCount())
	assert.Equal(t, 17, s.PlayerHand(entity.Hand1st).Value())
	assert.Equal(t, 0, s.Deck().Len())
}

func TestProcessFinishGame(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	rec := &recorder{}
	p := NewMatchProcessor(engine.NewGameEngine(), nil)
	p.SetNotifier(rec)
	s := newDealtState(t, 10, entity.RankTen, entity.RankTwo, entity.RankTen, entity.RankSix, entity.RankNine)
	require.NoError(t, p.ProcessNewGame(ctx, logger, s))
	require.NoError(t, p.ProcessDealerTurn(ctx, logger, s))
	assert.True(t, s.DealerHand().IsBust())

	result := p.ProcessFinishGame(ctx, logger, s)
	require.NotNil(t, result)
	assert.True(t, result.DealerBust)
	assert.Equal(t, entity.OutcomeWin, result.Hands[0].Outcome)
	assert.Equal(t, UpdateFinish, rec.updates[len(rec.updates)-1].Kind)
}
