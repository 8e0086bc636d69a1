package entity

type Action string

const (
	ActionHit        Action = "hit"
	ActionStand      Action = "stand"
	ActionDoubleDown Action = "double down"
	ActionSplit      Action = "split"
	ActionInsurance  Action = "insurance"
	ActionSurrender  Action = "surrender"
)

var AllActions = []Action{
	ActionHit, ActionStand, ActionDoubleDown, ActionSplit, ActionInsurance, ActionSurrender,
}

func ParseAction(s string) (Action, bool) {
	for _, a := range AllActions {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// ActionRequest is one player action. AceChoice applies only when the
// action draws an Ace.
type ActionRequest struct {
	Action    Action
	AceChoice AceChoice
}
