package portainer

import (
	"errors"
	"fmt"
)

// Operation names attached to API errors, one per control-plane capability.
const (
	OpPing           = "ping"
	OpAdminCheck     = "admin check"
	OpAdminInit      = "admin init"
	OpAuth           = "auth"
	OpEndpointCreate = "endpoint create"
	OpEndpointList   = "endpoint list"
	OpStackList      = "stack list"
	OpStackCreate    = "stack create"
)

// Error describes a failed control-plane call. Op names the operation that
// failed, Status carries the HTTP status code (zero when the request never
// produced a response), and Err is the underlying cause, if any.
type Error struct {
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("portainer %s failed (status %d): %v", e.Op, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("portainer %s failed (status %d)", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("portainer %s failed: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("portainer %s failed", e.Op)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsOp reports whether err is a control-plane error for the given operation.
func IsOp(err error, op string) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Op == op
}
