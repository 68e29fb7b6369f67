package domain

import "fmt"

// Action identifies one of the supported AI content-transform operations.
type Action string

// The five supported actions.
const (
	ActionContinue   Action = "continue"
	ActionRephrase   Action = "rephrase"
	ActionGrammar    Action = "grammar"
	ActionEngagement Action = "engagement"
	ActionShorter    Action = "shorter"
)

// Actions lists all valid actions in a stable order.
func Actions() []Action {
	return []Action{
		ActionContinue,
		ActionRephrase,
		ActionGrammar,
		ActionEngagement,
		ActionShorter,
	}
}

// ParseAction converts a raw string into an Action.
// Returns ErrUnknownAction if the value is not one of the five recognized actions.
func ParseAction(s string) (Action, error) {
	action := Action(s)
	if !action.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return action, nil
}

// IsValid reports whether the action is one of the five recognized values.
func (a Action) IsValid() bool {
	switch a {
	case ActionContinue, ActionRephrase, ActionGrammar, ActionEngagement, ActionShorter:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (a Action) String() string {
	return string(a)
}
