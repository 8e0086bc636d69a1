package processor

import (
	"context"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/engine"
	"go.uber.org/zap"
)

type Processor struct {
	*BaseProcessor
}

func NewMatchProcessor(engine engine.UseCase, chooser engine.AceChooser) IProcessor {
	return &Processor{
		NewBaseProcessor(engine, chooser),
	}
}

func (p *Processor) ProcessNewGame(
	ctx context.Context,
	logger *zap.Logger,
	s *entity.RoundState,
) error {
	if err := p.engine.NewGame(s, p.chooser); err != nil {
		logger.With(zap.String("round-id", s.ID()), zap.Error(err)).Error("error-deal-initial-hands")
		return err
	}
	for _, card := range s.PlayerHand(entity.Hand1st).Cards() {
		p.notifyDealCard(s, entity.Hand1st, card)
	}
	for _, card := range s.DealerHand().Cards() {
		p.notifyDealerCard(s, card)
	}
	logger.With(
		zap.String("round-id", s.ID()),
		zap.String("player", s.PlayerHand(entity.Hand1st).String()),
		zap.Int("player-value", s.PlayerHand(entity.Hand1st).Value()),
		zap.Bool("natural", s.IsNatural()),
	).Info("initial deal")
	return nil
}

func (p *Processor) ProcessAction(
	ctx context.Context,
	logger *zap.Logger,
	s *entity.RoundState,
	req *entity.ActionRequest,
) (bool, error) {
	log := logger.With(
		zap.String("round-id", s.ID()),
		zap.String("action", string(req.Action)),
		zap.Stringer("hand", s.GetCurrentHandN0()),
	)
	if err := s.CheckAction(req.Action); err != nil {
		log.With(zap.Error(err)).Warn("action-rejected")
		return false, err
	}
	handN0 := s.GetCurrentHandN0()
	switch req.Action {
	case entity.ActionHit:
		card, err := p.engine.Draw(s, handN0, req.AceChoice, p.chooser)
		if err != nil {
			log.With(zap.Error(err)).Warn("error-hit")
			return false, err
		}
		s.AddPlayAction()
		p.notifyDealCard(s, handN0, card)
		// a bust ends this hand; the next split hand (if any) takes over
		if s.PlayerHand(handN0).IsBust() {
			p.finishHand(s, handN0)
		}
	case entity.ActionStand:
		s.AddPlayAction()
		p.finishHand(s, handN0)
	case entity.ActionDoubleDown:
		card, err := p.engine.DoubleDown(s, req.AceChoice, p.chooser)
		if err != nil {
			log.With(zap.Error(err)).Warn("error-double-down")
			return false, err
		}
		s.AddPlayAction()
		p.notifyUpdateBet(s)
		p.notifyDealCard(s, handN0, card)
		p.finishHand(s, handN0)
	case entity.ActionSplit:
		if err := p.engine.Split(s); err != nil {
			log.With(zap.Error(err)).Warn("error-split")
			return false, err
		}
		s.AddPlayAction()
		p.broadcastMessage(&Update{
			Kind:    UpdateSplit,
			RoundID: s.ID(),
			State:   s.GetGameState(),
			HandN0:  entity.Hand1st,
			Hand:    s.PlayerHand(entity.Hand1st),
		})
	case entity.ActionInsurance:
		ins := p.engine.Insurance(s)
		log.With(
			zap.Stringer("side-bet", ins.Bet),
			zap.Bool("won", ins.Won),
		).Info("insurance settled")
		p.broadcastMessage(&Update{
			Kind:      UpdateInsurance,
			RoundID:   s.ID(),
			State:     s.GetGameState(),
			Insurance: ins,
		})
	case entity.ActionSurrender:
		p.engine.Surrender(s)
		s.AddPlayAction()
		for _, n := range s.HandSlots() {
			s.SetVisited(n)
		}
	}
	log.With(zap.Int("value", s.PlayerHand(handN0).Value())).Info("action applied")
	return s.IsAllVisited(), nil
}

func (p *Processor) ProcessDealerTurn(
	ctx context.Context,
	logger *zap.Logger,
	s *entity.RoundState,
) error {
	drawn, err := p.engine.RunDealerPolicy(s.DealerHand(), s.Deck())
	for _, card := range drawn {
		p.notifyDealerCard(s, card)
	}
	if err != nil {
		logger.With(zap.String("round-id", s.ID()), zap.Error(err)).Error("error-dealer-draw")
		return err
	}
	logger.With(
		zap.String("round-id", s.ID()),
		zap.String("dealer", s.DealerHand().String()),
		zap.Int("dealer-value", s.DealerHand().Value()),
		zap.Int("drawn", len(drawn)),
	).Info("dealer done")
	return nil
}

func (p *Processor) ProcessFinishGame(
	ctx context.Context,
	logger *zap.Logger,
	s *entity.RoundState,
) *entity.RoundResult {
	result := p.engine.Finish(s)
	fields := []zap.Field{
		zap.String("round-id", s.ID()),
		zap.Int("dealer-value", result.DealerValue),
		zap.Stringer("net", result.Net),
		zap.Stringer("total", result.Total),
	}
	for _, h := range result.Hands {
		fields = append(fields, zap.String(h.HandN0.String(), h.Outcome.String()))
	}
	logger.With(fields...).Info("round resolved")
	p.broadcastMessage(&Update{
		Kind:    UpdateFinish,
		RoundID: s.ID(),
		State:   s.GetGameState(),
		Result:  result,
	})
	return result
}

// finishHand closes handN0 and moves play to the next open split hand.
func (p *Processor) finishHand(s *entity.RoundState, handN0 entity.HandN0) {
	s.SetVisited(handN0)
	if next, ok := s.NextHandN0(); ok {
		s.SetCurrentHandN0(next)
	}
}
