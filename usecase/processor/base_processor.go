package processor

import (
	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/engine"
)

type BaseProcessor struct {
	engine   engine.UseCase
	chooser  engine.AceChooser
	notifier Notifier
}

func NewBaseProcessor(engine engine.UseCase, chooser engine.AceChooser) *BaseProcessor {
	return &BaseProcessor{
		engine:  engine,
		chooser: chooser,
	}
}

func (m *BaseProcessor) SetNotifier(n Notifier) {
	m.notifier = n
}

func (m *BaseProcessor) NotifyUpdateGameState(s *entity.RoundState) {
	m.broadcastMessage(&Update{
		Kind:    UpdateGameState,
		RoundID: s.ID(),
		State:   s.GetGameState(),
	})
}

func (m *BaseProcessor) broadcastMessage(u *Update) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(u)
}

func (m *BaseProcessor) notifyDealCard(s *entity.RoundState, handN0 entity.HandN0, card *entity.Card) {
	dealt := *card
	m.broadcastMessage(&Update{
		Kind:    UpdateDeal,
		RoundID: s.ID(),
		State:   s.GetGameState(),
		HandN0:  handN0,
		Card:    &dealt,
		Hand:    s.PlayerHand(handN0),
	})
}

func (m *BaseProcessor) notifyDealerCard(s *entity.RoundState, card *entity.Card) {
	dealt := *card
	m.broadcastMessage(&Update{
		Kind:    UpdateDealerDeal,
		RoundID: s.ID(),
		State:   s.GetGameState(),
		Card:    &dealt,
		Hand:    s.DealerHand(),
	})
}

func (m *BaseProcessor) notifyUpdateBet(s *entity.RoundState) {
	m.broadcastMessage(&Update{
		Kind:    UpdateBet,
		RoundID: s.ID(),
		State:   s.GetGameState(),
		Bet:     s.Chips().Bet(),
	})
}
