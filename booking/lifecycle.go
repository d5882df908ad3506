package booking

// The lifecycle is enforced here, not by the UI. The legacy system only
// hid buttons; the persistence call accepted any target status. Transition
// is the single source of truth and presentation queries NextStatuses
// instead of hard-coding which actions to offer.
//
//	pending     -> confirmed, cancelled
//	confirmed   -> in_progress, completed, cancelled
//	in_progress -> completed, cancelled
//	completed   -> (terminal)
//	cancelled   -> pending (reactivation)
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  nil,
	StatusCancelled:  {StatusPending},
}

// NextStatuses returns the legal targets from a status. Terminal statuses
// return an empty slice.
func NextStatuses(current Status) []Status {
	next := transitions[current]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// Transition checks that moving from current to target is legal. It returns
// *InvalidTransitionError otherwise; it never mutates anything.
func Transition(current, target Status) error {
	for _, next := range transitions[current] {
		if next == target {
			return nil
		}
	}
	return &InvalidTransitionError{From: current, To: target}
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return "invalid transition from " + string(e.From) + " to " + string(e.To)
}

// StatesFromInvalidTransitionError unpacks the offending pair, for callers
// that report the rejection rather than just pass the error through.
func StatesFromInvalidTransitionError(err error) (from, to Status, ok bool) {
	iterr, ok := err.(*InvalidTransitionError)
	if ok {
		return iterr.From, iterr.To, true
	}
	return "", "", false
}
