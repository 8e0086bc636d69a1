package processor

import (
	"github.com/ciaolink-game-platform/blackjack-solo/entity"
)

type UpdateKind string

const (
	UpdateDeal       UpdateKind = "deal"
	UpdateDealerDeal UpdateKind = "dealer_deal"
	UpdateBet        UpdateKind = "bet"
	UpdateSplit      UpdateKind = "split"
	UpdateInsurance  UpdateKind = "insurance"
	UpdateGameState  UpdateKind = "game_state"
	UpdateFinish     UpdateKind = "finish"
)

// Update is what a driver sees of the round as it progresses. Hands are
// always complete; hiding the dealer hole card is up to the driver.
type Update struct {
	Kind      UpdateKind
	RoundID   string
	State     entity.GameState
	HandN0    entity.HandN0
	Card      *entity.Card
	Hand      *entity.Hand
	Bet       int64
	Insurance *entity.InsuranceResult
	Result    *entity.RoundResult
}

type Notifier interface {
	Notify(u *Update)
}

type NotifierFunc func(u *Update)

func (f NotifierFunc) Notify(u *Update) { f(u) }

type IBaseProcessor interface {
	NotifyUpdateGameState(s *entity.RoundState)
	SetNotifier(n Notifier)
}
