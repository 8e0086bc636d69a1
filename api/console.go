package api

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ciaolink-game-platform/blackjack-solo/entity"
	"github.com/ciaolink-game-platform/blackjack-solo/usecase/processor"
)

// Console is the text front end: it prompts, narrates and leaves every
// rule to the round engine.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	session *Session
}

func NewConsole(in io.Reader, out io.Writer, session *Session, autoAce bool) *Console {
	c := &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		session: session,
	}
	if !autoAce {
		session.SetAceChooser(c)
	}
	session.SetNotifier(processor.NotifierFunc(c.narrate))
	return c
}

func (c *Console) Run(ctx context.Context) error {
	err := c.loop(ctx)
	sum := c.session.Summary()
	c.printf("\nYou ended the game with %s chips (net %s over %d rounds).\n", sum.Total, sum.NetWinnings, sum.Rounds)
	c.printf("Thanks for playing! Goodbye!\n")
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) loop(ctx context.Context) error {
	for {
		c.printf("\nWelcome to Blackjack!\nYou have %s chips.\n", c.session.Chips().Total())
		round, err := c.startRound(ctx)
		if err != nil {
			return err
		}
		c.showHands(round, true)
		for !round.IsResolved() {
			action, err := c.promptAction(round)
			if err != nil {
				return err
			}
			err = c.session.Play(ctx, round, action, entity.AceAuto)
			switch {
			case errors.Is(err, entity.ErrInvalidAction):
				c.printf("%s\n", reason(err))
				continue
			case err != nil:
				return err
			}
			if !round.IsResolved() {
				c.showHands(round, true)
			}
		}
		c.showResult(round)
		if c.session.IsOver() {
			c.printf("You have no chips left to bet. Game over!\n")
			return nil
		}
		again, err := c.promptYesNo("Do you want to play again? (yes or no): ")
		if err != nil || !again {
			return err
		}
	}
}

func (c *Console) startRound(ctx context.Context) (*RoundHandler, error) {
	for {
		bet, err := c.promptInt("How much do you want to bet? ")
		if err != nil {
			return nil, err
		}
		round, err := c.session.StartRound(ctx, bet)
		if errors.Is(err, entity.ErrInvalidBet) {
			c.printf("Bet must be between %d and %s.\n", entity.MinBetAllowed, c.session.Chips().Total())
			continue
		}
		return round, err
	}
}

// ChooseAce prompts until the player picks 1 or 11.
func (c *Console) ChooseAce(hand *entity.Hand, card *entity.Card) (entity.AceChoice, error) {
	c.printf("You drew an Ace!\n")
	if hand.Len() > 0 {
		c.printf("Here is your hand so far: %s\n", hand)
	}
	for {
		v, err := c.promptInt("Choose what value you want your Ace-ranked card to have (1 or 11): ")
		if err != nil {
			return entity.AceAuto, err
		}
		choice := entity.AceChoice(v)
		if choice == entity.AceOne || choice == entity.AceEleven {
			return choice, nil
		}
		c.printf("That is not a valid value.\n")
	}
}

func (c *Console) narrate(u *processor.Update) {
	switch u.Kind {
	case processor.UpdateDeal:
		if u.State == entity.GameStatePlayerTurn {
			c.printf("You received a %s.\n", u.Card)
		}
	case processor.UpdateDealerDeal:
		if u.State == entity.GameStateDealerTurn {
			c.printf("The dealer received a %s.\n", u.Card)
		}
	case processor.UpdateSplit:
		c.printf("You chose to split your hand.\n")
	case processor.UpdateBet:
		c.printf("Your bet is now %d.\n", u.Bet)
	case processor.UpdateInsurance:
		if u.Insurance.Won {
			c.printf("The dealer has a blackjack. You won the insurance bet of %s!\n", u.Insurance.Bet)
		} else {
			c.printf("The dealer does not have a blackjack. You lost your insurance bet of %s.\n", u.Insurance.Bet)
		}
	}
}

func (c *Console) showHands(round *RoundHandler, hideHole bool) {
	hands := round.PlayerHands()
	for i, h := range hands {
		label := "Your hand"
		if len(hands) > 1 {
			label = fmt.Sprintf("Your %s hand", entity.HandN0(i+1))
		}
		c.printf("%s: %s; value: %d\n", label, h, h.Value())
	}
	dealer := round.DealerHand()
	if hideHole {
		c.printf("Dealer's hand: %s, hole\n", dealer.First())
		return
	}
	c.printf("Dealer's hand: %s; value: %d\n", dealer, dealer.Value())
}

func (c *Console) showResult(round *RoundHandler) {
	c.printf("\n")
	c.showHands(round, false)
	result := round.Result()
	for _, h := range result.Hands {
		switch h.Outcome {
		case entity.OutcomeBlackjack:
			c.printf("Blackjack! You win %s chips.\n", h.Amount)
		case entity.OutcomeWin:
			if result.DealerBust {
				c.printf("The dealer busts! You won your bet of %d!\n", h.Bet)
			} else {
				c.printf("You got a higher value! You won your bet of %d!\n", h.Bet)
			}
		case entity.OutcomeLose:
			c.printf("Dealer got a higher value. You lost your bet of %d.\n", h.Bet)
		case entity.OutcomeBust:
			c.printf("You busted with %d. You lost your bet of %d.\n", h.PlayerValue, h.Bet)
		case entity.OutcomePush:
			c.printf("It's a tie at %d. Your bet is returned.\n", h.PlayerValue)
		case entity.OutcomeSurrender:
			c.printf("You surrendered and lost half your bet (%s).\n", h.Amount.Neg())
		}
	}
	c.printf("You now have %s chips.\n", result.Total)
}

func (c *Console) promptAction(round *RoundHandler) (entity.Action, error) {
	legal := round.LegalActions()
	names := make([]string, 0, len(legal))
	for _, a := range legal {
		names = append(names, string(a))
	}
	prompt := fmt.Sprintf("What do you want to do: %s? ", strings.Join(names, ", "))
	if len(round.PlayerHands()) > 1 {
		prompt = fmt.Sprintf("[%s hand] %s", round.CurrentHandN0(), prompt)
	}
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if a, ok := entity.ParseAction(strings.ToLower(line)); ok {
			return a, nil
		}
		c.printf("That is not an option.\n")
	}
}

func (c *Console) promptInt(prompt string) (int64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err == nil {
			return v, nil
		}
		c.printf("That is not a valid integer.\n")
	}
}

func (c *Console) promptYesNo(prompt string) (bool, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func reason(err error) string {
	var actionErr *entity.ActionError
	if errors.As(err, &actionErr) {
		return actionErr.Reason
	}
	return err.Error()
}
