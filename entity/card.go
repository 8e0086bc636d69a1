package entity

import "fmt"

type Suit int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitSpades
	SuitClubs
)

var Suits = []Suit{SuitHearts, SuitDiamonds, SuitSpades, SuitClubs}

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "Hearts"
	case SuitDiamonds:
		return "Diamonds"
	case SuitSpades:
		return "Spades"
	case SuitClubs:
		return "Clubs"
	}
	return "Unknown"
}

type Rank int

const (
	RankTwo Rank = iota + 2
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

var Ranks = []Rank{
	RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven, RankEight,
	RankNine, RankTen, RankJack, RankQueen, RankKing, RankAce,
}

var rankNames = map[Rank]string{
	RankTwo:   "Two",
	RankThree: "Three",
	RankFour:  "Four",
	RankFive:  "Five",
	RankSix:   "Six",
	RankSeven: "Seven",
	RankEight: "Eight",
	RankNine:  "Nine",
	RankTen:   "Ten",
	RankJack:  "Jack",
	RankQueen: "Queen",
	RankKing:  "King",
	RankAce:   "Ace",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "Unknown"
}

// getCardPoint is the fixed rank table: face value for pips, 10 for
// court cards and 11 for an Ace until it lands in a hand.
func getCardPoint(r Rank) int {
	switch {
	case r == RankAce:
		return 11
	case r >= RankTen:
		return 10
	default:
		return int(r)
	}
}

// Card is a suit/rank pair. Value only ever changes for an Ace, when it is
// added to a hand.
type Card struct {
	Suit  Suit
	Rank  Rank
	Value int
}

func NewCard(s Suit, r Rank) *Card {
	return &Card{
		Suit:  s,
		Rank:  r,
		Value: getCardPoint(r),
	}
}

func (c *Card) IsAce() bool { return c.Rank == RankAce }

func (c *Card) clone() *Card {
	cp := *c
	return &cp
}

func (c *Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
