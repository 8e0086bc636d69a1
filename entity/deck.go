package entity

import (
	"math/rand"

	"github.com/emirpasic/gods/lists/arraylist"
)

const MaxCard = 52

// Deck deals from the front of its list.
type Deck struct {
	cards *arraylist.List
	Dealt int
}

func NewDeck() *Deck {
	cards := arraylist.New()
	for _, s := range Suits {
		for _, r := range Ranks {
			cards.Add(NewCard(s, r))
		}
	}
	return &Deck{
		cards: cards,
	}
}

// NewDeckFromCards builds a stacked deck; the first card is dealt first.
func NewDeckFromCards(cards ...*Card) *Deck {
	list := arraylist.New()
	for _, c := range cards {
		list.Add(c)
	}
	return &Deck{
		cards: list,
	}
}

// Shuffle permutes the remaining cards in place. A nil rng falls back to
// the math/rand global source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := d.cards.Size() - 1; i > 0; i-- {
		r := intn(i + 1)
		if i != r {
			d.cards.Swap(i, r)
		}
	}
}

func (d *Deck) Deal() (*Card, error) {
	v, ok := d.cards.Get(0)
	if !ok {
		return nil, ErrEmptyDeck
	}
	d.cards.Remove(0)
	d.Dealt++
	return v.(*Card), nil
}

// PutBack returns an undealt card to the top of the deck.
func (d *Deck) PutBack(c *Card) error {
	if d.cards.Size() >= MaxCard {
		return ErrDeckFull
	}
	d.cards.Insert(0, c)
	if d.Dealt > 0 {
		d.Dealt--
	}
	return nil
}

func (d *Deck) Len() int { return d.cards.Size() }

func (d *Deck) Cards() []*Card {
	result := make([]*Card, 0, d.cards.Size())
	d.cards.Each(func(_ int, v interface{}) {
		result = append(result, v.(*Card))
	})
	return result
}
