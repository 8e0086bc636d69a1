package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCard(t *testing.T) {
	tests := []struct {
		name  string
		rank  Rank
		value int
	}{
		{name: "pip", rank: RankSeven, value: 7},
		{name: "ten", rank: RankTen, value: 10},
		{name: "jack", rank: RankJack, value: 10},
		{name: "queen", rank: RankQueen, value: 10},
		{name: "king", rank: RankKing, value: 10},
		{name: "ace", rank: RankAce, value: 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCard(SuitDiamonds, tt.rank)
			assert.Equal(t, tt.value, c.Value)
			assert.Equal(t, tt.rank == RankAce, c.IsAce())
		})
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "Ten of Hearts", NewCard(SuitHearts, RankTen).String())
	assert.Equal(t, "Ace of Spades", NewCard(SuitSpades, RankAce).String())
	assert.Equal(t, "Unknown", Rank(99).String())
	assert.Equal(t, "Unknown", Suit(9).String())
}
