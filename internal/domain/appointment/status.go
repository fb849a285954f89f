package appointment

import "github.com/shadysnails/salon-scheduler/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether s is an absorbing state. Terminal
// appointments are read-only.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
	RoleAdmin    Role = "admin"
)

// CanConfirm allows pending → confirmed only.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete allows any non-terminal state → completed.
func CanComplete(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel distinguishes re-cancellation so callers can report it.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("already_cancelled")
	}
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
