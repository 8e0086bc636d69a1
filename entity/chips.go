package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	DefaultStartingChips = 100
	MinBetAllowed        = 1
)

// Chips is the session bankroll. It never clamps Total; callers check
// IsBroke after every settlement.
type Chips struct {
	total decimal.Decimal
	bet   int64
}

func NewChips(total int64) *Chips {
	return &Chips{total: decimal.NewFromInt(total)}
}

func (c *Chips) Total() decimal.Decimal { return c.total }
func (c *Chips) Bet() int64             { return c.bet }

func (c *Chips) PlaceBet(amount int64) error {
	if amount < MinBetAllowed || decimal.NewFromInt(amount).GreaterThan(c.total) {
		return fmt.Errorf("%w: bet %d outside [%d, %s]", ErrInvalidBet, amount, MinBetAllowed, c.total)
	}
	c.bet = amount
	return nil
}

func (c *Chips) WinBet()  { c.total = c.total.Add(decimal.NewFromInt(c.bet)) }
func (c *Chips) LoseBet() { c.total = c.total.Sub(decimal.NewFromInt(c.bet)) }

func (c *Chips) Credit(amount decimal.Decimal) { c.total = c.total.Add(amount) }
func (c *Chips) Debit(amount decimal.Decimal)  { c.total = c.total.Sub(amount) }

func (c *Chips) DoubleBet() { c.bet *= 2 }

// HalfBet is bet/2 without rounding, used by insurance and surrender.
func (c *Chips) HalfBet() decimal.Decimal {
	return decimal.NewFromInt(c.bet).Div(decimal.NewFromInt(2))
}

func (c *Chips) CanCover(amount decimal.Decimal) bool {
	return c.total.GreaterThanOrEqual(amount)
}

// IsBroke is true once the bankroll cannot cover the minimum bet, which a
// half-chip remainder from insurance or surrender can leave above zero.
func (c *Chips) IsBroke() bool { return c.total.LessThan(decimal.NewFromInt(MinBetAllowed)) }
