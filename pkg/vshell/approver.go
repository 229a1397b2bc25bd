package vshell

import "context"

// Approver confirms destructive operations such as deleting a saved session.
//
// Implementations:
//   - ForcedApprover: warns, counts down and approves (--force)
//   - InteractiveApprover: asks the user to type the session name
type Approver interface {
	// RequestApproval returns true if the operation on namespace may proceed.
	RequestApproval(ctx context.Context, namespace string) (bool, error)
}
