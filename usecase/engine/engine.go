package engine

import (
	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/shopspring/decimal"
)

type Engine struct{}

func NewGameEngine() UseCase {
	return &Engine{}
}

// NewGame deals player, player, dealer, dealer from the round's deck.
func (m *Engine) NewGame(s *entity.RoundState, chooser AceChooser) error {
	s.Init()
	for i := 0; i < 2; i++ {
		if _, err := m.Draw(s, entity.Hand1st, entity.AceAuto, chooser); err != nil {
			return err
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := m.dealTo(s.DealerHand(), s.Deck(), entity.AceAuto, nil); err != nil {
			return err
		}
	}
	s.SetNatural(s.PlayerHand(entity.Hand1st).IsBlackjack())
	return nil
}

// Draw adds one card to a player hand. An explicit choice wins over the
// chooser; with neither the automatic Ace policy applies. On error the card
// goes back on the deck and the hand is unchanged.
func (m *Engine) Draw(s *entity.RoundState, handN0 entity.HandN0, choice entity.AceChoice, chooser AceChooser) (*entity.Card, error) {
	hand := s.PlayerHand(handN0)
	if hand == nil {
		return nil, entity.NewActionError(entity.ActionHit, "no "+handN0.String()+" hand")
	}
	return m.dealTo(hand, s.Deck(), choice, chooser)
}

func (m *Engine) dealTo(hand *entity.Hand, deck *entity.Deck, choice entity.AceChoice, chooser AceChooser) (*entity.Card, error) {
	card, err := deck.Deal()
	if err != nil {
		return nil, err
	}
	if card.IsAce() && choice == entity.AceAuto && chooser != nil {
		choice, err = chooser.ChooseAce(hand, card)
		if err != nil {
			_ = deck.PutBack(card)
			return nil, err
		}
	}
	if err := hand.AddCard(card, choice); err != nil {
		_ = deck.PutBack(card)
		return nil, err
	}
	return card, nil
}

func (m *Engine) DoubleDown(s *entity.RoundState, choice entity.AceChoice, chooser AceChooser) (*entity.Card, error) {
	card, err := m.Draw(s, s.GetCurrentHandN0(), choice, chooser)
	if err != nil {
		return nil, err
	}
	s.Chips().DoubleBet()
	s.SetDoubled(true)
	return card, nil
}

func (m *Engine) Split(s *entity.RoundState) error {
	first, second, err := s.PlayerHand(entity.Hand1st).Split()
	if err != nil {
		return err
	}
	s.SplitHand(first, second)
	return nil
}

// Insurance settles the side bet at once: 1:1 against a dealer natural,
// forfeited otherwise.
func (m *Engine) Insurance(s *entity.RoundState) *entity.InsuranceResult {
	chips := s.Chips()
	side := chips.HalfBet()
	result := &entity.InsuranceResult{Bet: side}
	if s.DealerHand().IsBlackjack() {
		chips.Credit(side)
		result.Won = true
		result.Amount = side
	} else {
		chips.Debit(side)
		result.Amount = side.Neg()
	}
	s.SetInsurance(result)
	return result
}

func (m *Engine) Surrender(s *entity.RoundState) {
	s.SetSurrendered(true)
}

// RunDealerPolicy draws while the dealer is under 17 and returns the drawn
// cards. A bust always ends the loop since it is above 17.
func (m *Engine) RunDealerPolicy(dealer *entity.Hand, deck *entity.Deck) ([]*entity.Card, error) {
	drawn := make([]*entity.Card, 0)
	for dealer.DealerMustDraw() {
		card, err := m.dealTo(dealer, deck, entity.AceAuto, nil)
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, card)
	}
	return drawn, nil
}

// Finish settles every player hand against the dealer and applies the
// amounts to the bankroll. Insurance was settled when placed and only
// counts towards Net here.
func (m *Engine) Finish(s *entity.RoundState) *entity.RoundResult {
	chips := s.Chips()
	dealer := s.DealerHand()
	result := &entity.RoundResult{
		RoundID:     s.ID(),
		Hands:       make([]*entity.HandResult, 0, 2),
		Insurance:   s.GetInsurance(),
		DealerValue: dealer.Value(),
		DealerBust:  dealer.IsBust(),
		Net:         decimal.Zero,
	}
	bet := decimal.NewFromInt(chips.Bet())
	for _, handN0 := range s.HandSlots() {
		hand := s.PlayerHand(handN0)
		r := &entity.HandResult{
			HandN0:      handN0,
			PlayerValue: hand.Value(),
			DealerValue: dealer.Value(),
			Bet:         chips.Bet(),
			Amount:      decimal.Zero,
		}
		switch {
		case s.IsSurrendered():
			r.Outcome = entity.OutcomeSurrender
			r.Amount = chips.HalfBet().Neg()
			chips.Debit(chips.HalfBet())
		case s.IsNatural():
			payout := chips.Bet() * entity.BlackjackPayoutNumerator / entity.BlackjackPayoutDenominator
			r.Outcome = entity.OutcomeBlackjack
			r.Amount = decimal.NewFromInt(payout)
			chips.Credit(r.Amount)
		case hand.IsBust():
			r.Outcome = entity.OutcomeBust
			r.Amount = bet.Neg()
			chips.LoseBet()
		case dealer.IsBust():
			r.Outcome = entity.OutcomeWin
			r.Amount = bet
			chips.WinBet()
		default:
			switch hand.Compare(dealer) {
			case 1:
				r.Outcome = entity.OutcomeWin
				r.Amount = bet
				chips.WinBet()
			case -1:
				r.Outcome = entity.OutcomeLose
				r.Amount = bet.Neg()
				chips.LoseBet()
			default:
				r.Outcome = entity.OutcomePush
			}
		}
		result.Net = result.Net.Add(r.Amount)
		result.Hands = append(result.Hands, r)
	}
	if ins := s.GetInsurance(); ins != nil {
		result.Net = result.Net.Add(ins.Amount)
	}
	result.Total = chips.Total()
	s.SetResult(result)
	return result
}
