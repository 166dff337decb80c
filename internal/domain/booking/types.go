package booking

type Status string

const (
	// StatusPending means the customer reserved a slot but has not confirmed
	// intent past the payment-decision step of the wizard.
	StatusPending Status = "pending"
	// StatusCompleted means the customer confirmed; the booking is immutable
	// afterwards except for the calendar event stamp.
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo permits pending→completed only.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next == StatusCompleted
}
