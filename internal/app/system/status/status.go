// Package status defines the donation-request lifecycle.
//
// A request starts at Pending. A donor confirmation moves it to InProgress,
// and from there the requester either marks it Done or Canceled. Done and
// Canceled are terminal.
package status

// Donation-request statuses.
const (
	Pending    = "pending"
	InProgress = "inprogress"
	Done       = "done"
	Canceled   = "canceled"
)

// User account statuses.
const (
	Active  = "active"
	Blocked = "blocked"
)

// IsValid reports whether s is a known donation-request status.
func IsValid(s string) bool {
	switch s {
	case Pending, InProgress, Done, Canceled:
		return true
	}
	return false
}

// transitions maps a current status to the statuses it may move to via the
// status-update endpoint. Confirmation is handled separately: it may set
// InProgress from either Pending or InProgress (a later confirmation
// replaces the attached donor).
var transitions = map[string][]string{
	Pending:    {InProgress, Canceled},
	InProgress: {Done, Canceled},
}

// CanTransition reports whether a request currently at from may be moved
// to to. Terminal statuses allow no further moves.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanConfirm reports whether a request currently at from may accept a donor
// confirmation.
func CanConfirm(from string) bool {
	return from == Pending || from == InProgress
}
