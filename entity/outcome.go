package entity

import "github.com/shopspring/decimal"

// Outcome represents the result of one player hand.
type Outcome string

const (
	OutcomeWin       Outcome = "WIN"
	OutcomeLose      Outcome = "LOSE"
	OutcomePush      Outcome = "PUSH"
	OutcomeBlackjack Outcome = "BLACKJACK"
	OutcomeBust      Outcome = "BUST"
	OutcomeSurrender Outcome = "SURRENDER"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsWin() bool {
	return o == OutcomeWin || o == OutcomeBlackjack
}

func (o Outcome) IsLoss() bool {
	return o == OutcomeLose || o == OutcomeBust || o == OutcomeSurrender
}

type HandResult struct {
	HandN0      HandN0
	Outcome     Outcome
	PlayerValue int
	DealerValue int
	Bet         int64
	// Amount is the signed change applied to the bankroll.
	Amount decimal.Decimal
}

type InsuranceResult struct {
	Bet    decimal.Decimal
	Won    bool
	Amount decimal.Decimal
}

type RoundResult struct {
	RoundID     string
	Hands       []*HandResult
	Insurance   *InsuranceResult
	DealerValue int
	DealerBust  bool
	Net         decimal.Decimal
	Total       decimal.Decimal
}
