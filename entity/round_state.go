package entity

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/shopspring/decimal"
)

type GameState string

const (
	GameStateIdle       GameState = "IDLE"
	GameStateDealing    GameState = "DEALING"
	GameStatePlayerTurn GameState = "PLAYER_TURN"
	GameStateDealerTurn GameState = "DEALER_TURN"
	GameStateResolved   GameState = "RESOLVED"
)

// RoundState holds one round: the player's hand(s), the dealer hand, the deck
// they are drawn from and a reference to the session bankroll.
type RoundState struct {
	id        string
	gameState GameState
	deck      *Deck
	chips     *Chips

	userHands   *linkedhashmap.Map // HandN0 -> *Hand, in play order
	dealerHand  *Hand
	currentHand HandN0
	visited     map[HandN0]bool

	playActions int
	natural     bool
	doubled     bool
	surrendered bool
	insurance   *InsuranceResult
	result      *RoundResult
}

func NewRoundState(id string, deck *Deck, chips *Chips) *RoundState {
	s := &RoundState{
		id:        id,
		gameState: GameStateIdle,
		deck:      deck,
		chips:     chips,
	}
	s.Init()
	return s
}

func (s *RoundState) Init() {
	s.userHands = linkedhashmap.New()
	s.userHands.Put(Hand1st, NewHand())
	s.dealerHand = NewHand()
	s.currentHand = Hand1st
	s.visited = make(map[HandN0]bool, 2)
	s.playActions = 0
	s.natural = false
	s.doubled = false
	s.surrendered = false
	s.insurance = nil
	s.result = nil
}

func (s *RoundState) ID() string        { return s.id }
func (s *RoundState) Deck() *Deck       { return s.deck }
func (s *RoundState) Chips() *Chips     { return s.chips }
func (s *RoundState) DealerHand() *Hand { return s.dealerHand }

func (s *RoundState) GetGameState() GameState  { return s.gameState }
func (s *RoundState) SetGameState(v GameState) { s.gameState = v }

func (s *RoundState) PlayerHand(n HandN0) *Hand {
	v, found := s.userHands.Get(n)
	if !found {
		return nil
	}
	return v.(*Hand)
}

func (s *RoundState) PlayerHands() []*Hand {
	hands := make([]*Hand, 0, s.userHands.Size())
	s.userHands.Each(func(_ interface{}, value interface{}) {
		hands = append(hands, value.(*Hand))
	})
	return hands
}

func (s *RoundState) HandSlots() []HandN0 {
	slots := make([]HandN0, 0, s.userHands.Size())
	s.userHands.Each(func(key interface{}, _ interface{}) {
		slots = append(slots, key.(HandN0))
	})
	return slots
}

func (s *RoundState) IsSplit() bool { return s.userHands.Size() > 1 }

// SplitHand replaces the single player hand with the two split halves.
func (s *RoundState) SplitHand(first, second *Hand) {
	s.userHands = linkedhashmap.New()
	s.userHands.Put(Hand1st, first)
	s.userHands.Put(Hand2nd, second)
	s.currentHand = Hand1st
}

func (s *RoundState) SetCurrentHandN0(v HandN0) { s.currentHand = v }
func (s *RoundState) GetCurrentHandN0() HandN0  { return s.currentHand }
func (s *RoundState) CurrentHand() *Hand        { return s.PlayerHand(s.currentHand) }

func (s *RoundState) SetVisited(n HandN0)     { s.visited[n] = true }
func (s *RoundState) IsVisited(n HandN0) bool { return s.visited[n] }

// NextHandN0 returns the first player hand not yet finished.
func (s *RoundState) NextHandN0() (HandN0, bool) {
	for _, n := range s.HandSlots() {
		if !s.visited[n] {
			return n, true
		}
	}
	return HandUnspecified, false
}

func (s *RoundState) IsAllVisited() bool {
	_, open := s.NextHandN0()
	return !open
}

func (s *RoundState) IsAllBusted() bool {
	for _, h := range s.PlayerHands() {
		if !h.IsBust() {
			return false
		}
	}
	return true
}

func (s *RoundState) AddPlayAction()       { s.playActions++ }
func (s *RoundState) PlayActionCount() int { return s.playActions }

func (s *RoundState) SetNatural(v bool) { s.natural = v }
func (s *RoundState) IsNatural() bool   { return s.natural }

func (s *RoundState) SetDoubled(v bool) { s.doubled = v }
func (s *RoundState) IsDoubled() bool   { return s.doubled }

func (s *RoundState) SetSurrendered(v bool) { s.surrendered = v }
func (s *RoundState) IsSurrendered() bool   { return s.surrendered }

func (s *RoundState) SetInsurance(v *InsuranceResult) { s.insurance = v }
func (s *RoundState) GetInsurance() *InsuranceResult  { return s.insurance }
func (s *RoundState) HasInsuranceBet() bool           { return s.insurance != nil }

func (s *RoundState) SetResult(v *RoundResult) { s.result = v }
func (s *RoundState) GetResult() *RoundResult  { return s.result }

// IsDealerSkipped is true when no player hand is left for the dealer to beat.
func (s *RoundState) IsDealerSkipped() bool {
	return s.natural || s.surrendered || s.IsAllBusted()
}

func (s *RoundState) isOpening() bool {
	return s.playActions == 0 && !s.IsSplit()
}

// CheckAction reports why a is not legal right now, or nil.
func (s *RoundState) CheckAction(a Action) error {
	if s.gameState != GameStatePlayerTurn {
		return NewActionError(a, "not the player's turn")
	}
	hand := s.CurrentHand()
	switch a {
	case ActionHit, ActionStand:
		return nil
	case ActionDoubleDown:
		if !s.isOpening() || hand.Len() != 2 {
			return NewActionError(a, "double down is only allowed as the first action on two cards")
		}
		need := decimal.NewFromInt(s.chips.Bet() * 2)
		if !s.chips.CanCover(need) {
			return NewActionError(a, "not enough chips to double down")
		}
		return nil
	case ActionSplit:
		if !s.isOpening() {
			return NewActionError(a, "split is only allowed as the first action")
		}
		if !hand.PlayerCanSplit() {
			return NewActionError(a, "split needs exactly two cards of equal value")
		}
		return nil
	case ActionInsurance:
		if !s.dealerHand.DealerPotentialBlackjack() {
			return NewActionError(a, "dealer's face-up card is not an Ace")
		}
		if s.HasInsuranceBet() {
			return NewActionError(a, "insurance already placed this round")
		}
		return nil
	case ActionSurrender:
		if !s.isOpening() {
			return NewActionError(a, "surrender is only allowed as the first action")
		}
		return nil
	}
	return NewActionError(a, "unknown action")
}

func (s *RoundState) GetLegalActions() []Action {
	result := make([]Action, 0, len(AllActions))
	for _, a := range AllActions {
		if s.CheckAction(a) == nil {
			result = append(result, a)
		}
	}
	return result
}
