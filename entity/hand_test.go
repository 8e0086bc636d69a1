package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handOf(t *testing.T, ranks ...Rank) *Hand {
	t.Helper()
	h := NewHand()
	for _, r := range ranks {
		require.NoError(t, h.AddCard(NewCard(SuitClubs, r), AceAuto))
	}
	return h
}

func TestHandAddCard(t *testing.T) {
	tests := []struct {
		name   string
		ranks  []Rank
		choice AceChoice
		want   int
	}{
		{name: "ace on 5 counts 11", ranks: []Rank{RankFive, RankAce}, choice: AceAuto, want: 16},
		{name: "ace on 12 counts 1", ranks: []Rank{RankTen, RankTwo, RankAce}, choice: AceAuto, want: 13},
		{name: "ace on 10 counts 11", ranks: []Rank{RankTen, RankAce}, choice: AceAuto, want: 21},
		{name: "explicit one", ranks: []Rank{RankFive, RankAce}, choice: AceOne, want: 6},
		{name: "explicit eleven may bust", ranks: []Rank{RankTen, RankFive, RankAce}, choice: AceEleven, want: 26},
		{name: "choice ignored for non ace", ranks: []Rank{RankFive, RankSix}, choice: AceOne, want: 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handOf(t, tt.ranks[:len(tt.ranks)-1]...)
			last := NewCard(SuitHearts, tt.ranks[len(tt.ranks)-1])
			require.NoError(t, h.AddCard(last, tt.choice))
			assert.Equal(t, tt.want, h.Value())

			sum := 0
			for _, c := range h.Cards() {
				sum += c.Value
			}
			assert.Equal(t, sum, h.Value())
		})
	}
}

func TestHandAddCardInvalidChoice(t *testing.T) {
	h := handOf(t, RankFive)
	err := h.AddCard(NewCard(SuitHearts, RankAce), AceChoice(5))
	assert.ErrorIs(t, err, ErrInvalidAceChoice)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 5, h.Value())
}

func TestHandIsBlackjack(t *testing.T) {
	assert.True(t, handOf(t, RankAce, RankKing).IsBlackjack())
	assert.False(t, handOf(t, RankSeven, RankSeven, RankSeven).IsBlackjack())
	assert.Equal(t, 21, handOf(t, RankSeven, RankSeven, RankSeven).Value())
	assert.False(t, handOf(t, RankTen, RankNine).IsBlackjack())
}

func TestHandIsBust(t *testing.T) {
	assert.False(t, handOf(t, RankTen, RankAce).IsBust())
	assert.True(t, handOf(t, RankTen, RankSix, RankSix).IsBust())
}

func TestHandIsSoft(t *testing.T) {
	assert.True(t, handOf(t, RankAce, RankSix).IsSoft())
	assert.False(t, handOf(t, RankTen, RankSix, RankAce).IsSoft())
}

func TestHandDealerMustDraw(t *testing.T) {
	tests := []struct {
		name  string
		ranks []Rank
		want  bool
	}{
		{name: "16 draws", ranks: []Rank{RankTen, RankSix}, want: true},
		{name: "17 stands", ranks: []Rank{RankTen, RankSeven}, want: false},
		{name: "soft 17 stands", ranks: []Rank{RankAce, RankSix}, want: false},
		{name: "bust stands", ranks: []Rank{RankTen, RankSix, RankNine}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handOf(t, tt.ranks...).DealerMustDraw())
		})
	}
}

func TestHandDealerPotentialBlackjack(t *testing.T) {
	assert.True(t, handOf(t, RankAce, RankFive).DealerPotentialBlackjack())
	assert.False(t, handOf(t, RankFive, RankAce).DealerPotentialBlackjack())
	assert.False(t, NewHand().DealerPotentialBlackjack())
}

func TestHandSplit(t *testing.T) {
	t.Run("pair of equal value", func(t *testing.T) {
		h := handOf(t, RankKing, RankTen)
		require.True(t, h.PlayerCanSplit())
		first, second, err := h.Split()
		require.NoError(t, err)
		assert.Equal(t, 10, first.Value())
		assert.Equal(t, 10, second.Value())
		assert.True(t, first.IsSplit())
		assert.False(t, first.PlayerCanSplit())

		require.NoError(t, first.AddCard(NewCard(SuitHearts, RankAce), AceAuto))
		assert.Equal(t, 21, first.Value())
		assert.False(t, first.IsBlackjack())
	})

	t.Run("not a pair", func(t *testing.T) {
		h := handOf(t, RankKing, RankNine)
		_, _, err := h.Split()
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("three cards", func(t *testing.T) {
		h := handOf(t, RankTwo, RankTwo, RankTwo)
		assert.False(t, h.PlayerCanSplit())
	})
}

func TestHandCompare(t *testing.T) {
	assert.Equal(t, 1, handOf(t, RankTen, RankNine).Compare(handOf(t, RankTen, RankEight)))
	assert.Equal(t, -1, handOf(t, RankTen, RankSeven).Compare(handOf(t, RankTen, RankEight)))
	assert.Equal(t, 0, handOf(t, RankTen, RankSeven).Compare(handOf(t, RankNine, RankEight)))
}

func TestHandString(t *testing.T) {
	h := NewHand()
	require.NoError(t, h.AddCard(NewCard(SuitHearts, RankTen), AceAuto))
	require.NoError(t, h.AddCard(NewCard(SuitSpades, RankSeven), AceAuto))
	assert.Equal(t, "Ten of Hearts, Seven of Spades", h.String())
	assert.Nil(t, NewHand().First())
	assert.Nil(t, NewHand().Last())
}

func TestHandAddCardInvalidChoiceNonAce(t *testing.T) {
	h := handOf(t, RankFive)
	err := h.AddCard(NewCard(SuitHearts, RankNine), AceChoice(5))
	assert.ErrorIs(t, err, ErrInvalidAceChoice)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 5, h.Value())
}

func TestHandCardsAreCopies(t *testing.T) {
	h := handOf(t, RankAce, RankFive)
	for _, c := range h.Cards() {
		c.Value = 99
	}
	h.First().Value = 99
	h.Last().Value = 99

	assert.Equal(t, 16, h.Value())
	sum := 0
	for _, c := range h.Cards() {
		sum += c.Value
	}
	assert.Equal(t, h.Value(), sum)
	assert.True(t, h.IsSoft())
}
