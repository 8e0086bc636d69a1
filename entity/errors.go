package entity

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDeck        = errors.New("deck.deal.error-empty")
	ErrDeckFull         = errors.New("deck.put-back.error-full")
	ErrInvalidBet       = errors.New("chips.bet.error-invalid")
	ErrInvalidAction    = errors.New("round.action.error-invalid")
	ErrInvalidAceChoice = errors.New("hand.ace.error-invalid-choice")
	ErrRoundResolved    = errors.New("round.error-resolved")
)

// ActionError describes why an action was rejected. It matches
// ErrInvalidAction with errors.Is.
type ActionError struct {
	Action Action
	Reason string
}

func NewActionError(a Action, reason string) *ActionError {
	return &ActionError{Action: a, Reason: reason}
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidAction.Error(), e.Action, e.Reason)
}

func (e *ActionError) Is(target error) bool {
	return target == ErrInvalidAction
}
