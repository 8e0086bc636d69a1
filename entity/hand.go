package entity

import (
	"fmt"
	"strings"
)

// HandN0 names a player hand slot; HAND_2ND only exists after a split.
type HandN0 int

const (
	HandUnspecified HandN0 = iota
	Hand1st
	Hand2nd
)

func (n HandN0) String() string {
	switch n {
	case Hand1st:
		return "first"
	case Hand2nd:
		return "second"
	}
	return "unspecified"
}

// AceChoice is the value requested for an Ace entering a hand. AceAuto lets
// the hand pick 11 when that does not bust, 1 otherwise.
type AceChoice int

const (
	AceAuto   AceChoice = 0
	AceOne    AceChoice = 1
	AceEleven AceChoice = 11
)

func (a AceChoice) Valid() bool {
	return a == AceAuto || a == AceOne || a == AceEleven
}

type Hand struct {
	cards []*Card
	value int
	split bool
}

func NewHand() *Hand {
	return &Hand{cards: make([]*Card, 0, 4)}
}

// AddCard appends c and keeps Value equal to the sum of the card values.
// A choice outside AceChoice is rejected for any card; a valid one only
// affects an Ace.
func (h *Hand) AddCard(c *Card, choice AceChoice) error {
	if !choice.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAceChoice, int(choice))
	}
	if c.IsAce() {
		switch choice {
		case AceAuto:
			if h.value+11 <= 21 {
				c.Value = 11
			} else {
				c.Value = 1
			}
		default:
			c.Value = int(choice)
		}
	}
	h.cards = append(h.cards, c)
	h.value += c.Value
	return nil
}

func (h *Hand) Value() int { return h.value }
func (h *Hand) Len() int   { return len(h.cards) }

// Cards returns copies of the cards in deal order, so callers cannot move
// a card value away from the hand total.
func (h *Hand) Cards() []*Card {
	result := make([]*Card, 0, len(h.cards))
	for _, c := range h.cards {
		result = append(result, c.clone())
	}
	return result
}

// First returns a copy of the dealer up-card, nil for an empty hand.
func (h *Hand) First() *Card {
	if len(h.cards) == 0 {
		return nil
	}
	return h.cards[0].clone()
}

func (h *Hand) Last() *Card {
	if len(h.cards) == 0 {
		return nil
	}
	return h.cards[len(h.cards)-1].clone()
}

func (h *Hand) IsBust() bool { return h.value > 21 }

// IsBlackjack reports a natural: 21 on the first two cards of an unsplit hand.
func (h *Hand) IsBlackjack() bool {
	return !h.split && len(h.cards) == 2 && h.value == 21
}

func (h *Hand) IsSoft() bool {
	for _, c := range h.cards {
		if c.IsAce() && c.Value == 11 {
			return true
		}
	}
	return false
}

func (h *Hand) IsSplit() bool { return h.split }

// Dealer must draw on lower than 17 and stand on >= 17, soft or hard.
func (h *Hand) DealerMustDraw() bool {
	return h.value < 17
}

func (h *Hand) DealerPotentialBlackjack() bool {
	return len(h.cards) > 0 && h.cards[0].IsAce()
}

func (h *Hand) PlayerCanSplit() bool {
	return !h.split && len(h.cards) == 2 && h.cards[0].Value == h.cards[1].Value
}

// Split breaks a pair into two one-card hands, each keeping its card value.
func (h *Hand) Split() (*Hand, *Hand, error) {
	if !h.PlayerCanSplit() {
		return nil, nil, NewActionError(ActionSplit, "split needs exactly two cards of equal value")
	}
	first := &Hand{cards: []*Card{h.cards[0]}, value: h.cards[0].Value, split: true}
	second := &Hand{cards: []*Card{h.cards[1]}, value: h.cards[1].Value, split: true}
	return first, second, nil
}

// String joins the card descriptions in deal order.
func (h *Hand) String() string {
	names := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

// Compare returns 1 when h beats d, -1 when it loses and 0 on a tie. Busts
// are settled before comparing, so only totals count here.
func (h *Hand) Compare(d *Hand) int {
	switch {
	case h.value > d.value:
		return 1
	case h.value < d.value:
		return -1
	}
	return 0
}
