package engine

import (
	"github.com/ciaolink-game-platform/blackjack-solo/entity"
)

// AceChooser asks whoever controls the player hand what an Ace is worth.
type AceChooser interface {
	ChooseAce(hand *entity.Hand, card *entity.Card) (entity.AceChoice, error)
}

type AceChooserFunc func(hand *entity.Hand, card *entity.Card) (entity.AceChoice, error)

func (f AceChooserFunc) ChooseAce(hand *entity.Hand, card *entity.Card) (entity.AceChoice, error) {
	return f(hand, card)
}

type UseCase interface {
	NewGame(s *entity.RoundState, chooser AceChooser) error
	Draw(s *entity.RoundState, handN0 entity.HandN0, choice entity.AceChoice, chooser AceChooser) (*entity.Card, error)
	DoubleDown(s *entity.RoundState, choice entity.AceChoice, chooser AceChooser) (*entity.Card, error)
	Split(s *entity.RoundState) error
	Insurance(s *entity.RoundState) *entity.InsuranceResult
	Surrender(s *entity.RoundState)
	RunDealerPolicy(dealer *entity.Hand, deck *entity.Deck) ([]*entity.Card, error)
	Finish(s *entity.RoundState) *entity.RoundResult
}
